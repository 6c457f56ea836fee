package codec

import (
	"fmt"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/hcl"
)

// decoders is the static format dispatch table.
var decoders = map[config.Format]config.Decoder{
	config.FormatJSON: config.DecoderFunc(DecodeJSON),
	config.FormatYAML: config.DecoderFunc(DecodeYAML),
	config.FormatXML:  config.DecoderFunc(DecodeXML),
	config.FormatCSV:  config.DecoderFunc(DecodeCSV),
	config.FormatText: config.DecoderFunc(DecodeText),
	config.FormatHCL:  hcl.NewDecoder(),
}

// Lookup returns the decoder registered for f, or a KindUnsupportedFormat
// error.
func Lookup(f config.Format) (config.Decoder, error) {
	if dec, ok := decoders[f]; ok {
		return dec, nil
	}
	return nil, &config.Error{
		Kind:   config.KindUnsupportedFormat,
		Format: f,
		Err:    fmt.Errorf("no decoder for format %q", f),
	}
}
