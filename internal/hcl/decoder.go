package hcl

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
)

// sourceName labels diagnostics; decoders receive a reader, not a path.
const sourceName = "config.hcl"

// Decoder is the HCL-specific implementation of the config.Decoder interface.
type Decoder struct{}

// NewDecoder creates a new HCL decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses the source and evaluates each top-level attribute into a
// cty.Value.
func (d *Decoder) Decode(ctx context.Context, r io.Reader) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL decoder started.")

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, config.NewDecodeError(config.FormatHCL, err)
	}

	// A fresh parser per call: hclparse caches files by name.
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, sourceName)
	if diags.HasErrors() {
		return nil, config.NewDecodeError(config.FormatHCL, fmt.Errorf("failed to parse HCL: %w", diags))
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, config.NewDecodeError(config.FormatHCL, fmt.Errorf("failed to decode HCL body: %w", diags))
	}

	raw := make(config.RawFieldMap, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, config.NewDecodeError(config.FormatHCL, fmt.Errorf("attribute %q: %w", name, diags))
		}
		logger.Debug("Evaluated HCL attribute.", "attribute", name, "type", val.Type().FriendlyName())
		raw[name] = val
	}

	logger.Debug("HCL decoding complete.", "attributes", len(raw))
	return raw, nil
}
