package codec

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
)

// DecodeJSON reads one JSON object. Numbers keep their literal text as
// json.Number.
func DecodeJSON(ctx context.Context, r io.Reader) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, config.NewDecodeError(config.FormatJSON, err)
	}
	if doc == nil {
		return nil, config.NewDecodeError(config.FormatJSON, errors.New("document is not an object"))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, config.NewDecodeError(config.FormatJSON, errors.New("unexpected data after the top-level object"))
	}

	logger.Debug("Decoded JSON document.", "keys", len(doc))
	return config.RawFieldMap(doc), nil
}
