package config

import (
	"context"
	"io"
)

// Decoder turns one raw source into a RawFieldMap. Implementations report
// syntax problems as KindDecode errors and leave completeness and type
// checks to the Validator.
type Decoder interface {
	Decode(ctx context.Context, r io.Reader) (RawFieldMap, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(ctx context.Context, r io.Reader) (RawFieldMap, error)

// Decode calls f(ctx, r).
func (f DecoderFunc) Decode(ctx context.Context, r io.Reader) (RawFieldMap, error) {
	return f(ctx, r)
}

// Validator checks a RawFieldMap for completeness and coerces it into a
// Record.
type Validator interface {
	Validate(ctx context.Context, raw RawFieldMap) (Record, error)
}
