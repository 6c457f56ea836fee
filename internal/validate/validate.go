// Package validate turns a decoded config.RawFieldMap into a config.Record.
// It checks that every required field is present and coerces each value to
// the field's numeric kind, whatever shape the literal had in the source.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	// ErrMissingField reports a required key absent from the source.
	ErrMissingField = errors.New("missing required field")
	// ErrNotNumeric reports a value that cannot be read as a number of the
	// field's kind.
	ErrNotNumeric = errors.New("value is not numeric")
)

// Validator is the default config.Validator.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate confirms all six fields are present, then coerces them. The first
// missing field in config.Fields order is reported before any coercion.
func (v *Validator) Validate(ctx context.Context, raw config.RawFieldMap) (config.Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validating decoded fields.", "keys", len(raw))

	for _, field := range config.Fields {
		if _, ok := raw[field.Name]; !ok {
			return config.Record{}, &config.Error{Kind: config.KindValidation, Field: field.Name, Err: ErrMissingField}
		}
	}

	ints := make(map[string]int, 3)
	floats := make(map[string]float64, 3)
	for _, field := range config.Fields {
		val, err := Coerce(field, raw[field.Name])
		if err != nil {
			return config.Record{}, &config.Error{Kind: config.KindValidation, Field: field.Name, Err: err}
		}
		switch n := val.(type) {
		case int:
			ints[field.Name] = n
		case float64:
			floats[field.Name] = n
		}
	}

	rec := config.NewRecord(ints["n0"], ints["h"], ints["nk"], floats["a"], floats["b"], floats["c"])
	logger.Debug("Validation passed.", "record", rec.String())
	return rec, nil
}

// Coerce converts value to an int for Integer fields or a float64 for Float
// fields. Numeric strings are accepted; integer fields reject fractions.
func Coerce(field config.Field, value any) (any, error) {
	num, err := toNumber(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, err)
	}

	exact := num.AsBigFloat()
	if field.Type == config.Integer {
		var n int
		if err := gocty.FromCtyValue(num, &n); err != nil {
			if exact.IsInt() {
				return nil, fmt.Errorf("%w: %s is out of range for %s", ErrNotNumeric, exact.Text('g', 10), field.Type)
			}
			return nil, fmt.Errorf("%w: want %s, got %s", ErrNotNumeric, field.Type, exact.Text('g', -1))
		}
		return n, nil
	}

	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return nil, fmt.Errorf("%w: %s is out of range for %s", ErrNotNumeric, exact.Text('g', 10), field.Type)
	}
	return f, nil
}

// toNumber lifts a decoded scalar into a known, non-null cty.Number.
func toNumber(value any) (cty.Value, error) {
	val, err := toCtyValue(value)
	if err != nil {
		return cty.NilVal, err
	}
	if val.IsNull() || !val.IsKnown() {
		return cty.NilVal, errors.New("value is null")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %s to number", describe(val))
	}
	return num, nil
}

// toCtyValue converts a native decoder value into its cty.Value.
func toCtyValue(value any) (cty.Value, error) {
	switch v := value.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return v, nil
	case json.Number:
		return cty.StringVal(string(v)), nil
	case string:
		return cty.StringVal(strings.TrimSpace(v)), nil
	case float32:
		return floatValue(float64(v))
	case float64:
		return floatValue(v)
	}

	ty, err := gocty.ImpliedType(value)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", value)
	}
	return gocty.ToCtyValue(value, ty)
}

// floatValue rejects NaN, which has no cty.Number representation.
func floatValue(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.NilVal, errors.New("NaN is not a number")
	}
	return cty.NumberFloatVal(f), nil
}

func describe(val cty.Value) string {
	if val.Type() == cty.String {
		return fmt.Sprintf("%q", val.AsString())
	}
	return val.Type().FriendlyName()
}
