// Package manual collects the configuration interactively, one field at a
// time. It is the fallback used when no source path is given.
package manual

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
	"github.com/vk/rangeeval/internal/validate"
)

// Prompter asks for each field on out and reads answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading answers line by line from in.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Collect prompts for every field in config.Fields order. An answer that is
// not a valid number of the field's kind is reported and the same prompt is
// issued again, with no retry limit. Collect only gives up when the input is
// exhausted.
func (p *Prompter) Collect(ctx context.Context) (config.RawFieldMap, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manual entry started.")

	raw := make(config.RawFieldMap, len(config.Fields))
	for _, field := range config.Fields {
		val, err := p.ask(ctx, field)
		if err != nil {
			return nil, &config.Error{Kind: config.KindManualEntry, Field: field.Name, Err: err}
		}
		raw[field.Name] = val
	}

	logger.Debug("Manual entry complete.")
	return raw, nil
}

func (p *Prompter) ask(ctx context.Context, field config.Field) (any, error) {
	logger := ctxlog.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		fmt.Fprintf(p.out, "Enter %s (%s): ", field.Name, field.Type)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}

		answer := p.in.Text()
		val, err := validate.Coerce(field, answer)
		if err == nil {
			return val, nil
		}

		logger.Debug("Rejected manual entry.", "field", field.Name, "attempt", attempt, "error", err)
		fmt.Fprintf(p.out, "Invalid %s value %q, try again.\n", field.Type, answer)
	}
}
