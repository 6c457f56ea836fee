package codec

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// DecodeYAML reads the first YAML document, which must be a mapping.
func DecodeYAML(ctx context.Context, r io.Reader) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)

	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, config.NewDecodeError(config.FormatYAML, fmt.Errorf("failed to unmarshal YAML: %w", err))
	}
	if doc == nil {
		return nil, config.NewDecodeError(config.FormatYAML, errors.New("document is not a mapping"))
	}

	logger.Debug("Decoded YAML document.", "keys", len(doc))
	return config.RawFieldMap(doc), nil
}
