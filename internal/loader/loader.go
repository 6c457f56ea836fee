// Package loader orchestrates producing a config.Record: it checks the
// source eagerly, dispatches to a decoder by file extension (or to manual
// entry when no path is given), validates the result, and returns a typed
// error on any failure.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/rangeeval/internal/codec"
	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
	"github.com/vk/rangeeval/internal/fsutil"
	"github.com/vk/rangeeval/internal/manual"
	"github.com/vk/rangeeval/internal/validate"
)

// Collector gathers fields without a source file.
type Collector interface {
	Collect(ctx context.Context) (config.RawFieldMap, error)
}

// Loader produces a config.Record from one source.
type Loader struct {
	path      string
	format    config.Format
	decoder   config.Decoder
	validator config.Validator
	collector Collector
	state     State
}

// Option customizes a Loader.
type Option func(*Loader)

// WithCollector sets the manual-entry fallback. The default prompts on
// stdin/stdout.
func WithCollector(c Collector) Option {
	return func(l *Loader) { l.collector = c }
}

// WithValidator replaces the default validator.
func WithValidator(v config.Validator) Option {
	return func(l *Loader) { l.validator = v }
}

// New creates a Loader for path. An empty path selects manual entry. For a
// non-empty path the extension is resolved first, so an unsupported format
// is reported without touching the file; the file is then checked for
// existence and readability.
func New(ctx context.Context, path string, opts ...Option) (*Loader, error) {
	logger := ctxlog.FromContext(ctx)

	l := &Loader{
		path:      path,
		validator: validate.New(),
		state:     StateUninitialized,
	}
	for _, opt := range opts {
		opt(l)
	}

	if path == "" {
		if l.collector == nil {
			l.collector = manual.New(os.Stdin, os.Stdout)
		}
		logger.Debug("No source path given, using manual entry.")
		l.transition(ctx, StateSourceChecked)
		return l, nil
	}

	l.format = config.FormatFromPath(path)
	if l.format == config.FormatUnknown {
		return nil, l.fail(ctx, &config.Error{
			Kind: config.KindUnsupportedFormat,
			Err:  fmt.Errorf("extension %q is not one of %s", filepath.Ext(path), supportedExtensions()),
		})
	}
	dec, err := codec.Lookup(l.format)
	if err != nil {
		return nil, l.fail(ctx, err)
	}
	l.decoder = dec

	if err := fsutil.CheckReadable(path); err != nil {
		return nil, l.fail(ctx, &config.Error{Kind: config.KindSourceNotFound, Err: err})
	}

	logger.Debug("Source checked.", "path", path, "format", l.format.String())
	l.transition(ctx, StateSourceChecked)
	return l, nil
}

// Load runs the decode and validate stages. Calling it again decodes the
// same source again.
func (l *Loader) Load(ctx context.Context) (config.Record, error) {
	ctx = ctxlog.With(ctx, "source", l.describe())
	logger := ctxlog.FromContext(ctx)

	l.transition(ctx, StateDecoding)
	raw, err := l.decode(ctx)
	if err != nil {
		return config.Record{}, l.fail(ctx, err)
	}

	l.transition(ctx, StateValidating)
	rec, err := l.validator.Validate(ctx, raw)
	if err != nil {
		return config.Record{}, l.fail(ctx, err)
	}

	l.transition(ctx, StateReady)
	logger.Info("Configuration loaded.", "record", rec.String())
	return rec, nil
}

// State returns the loader's current state.
func (l *Loader) State() State {
	return l.state
}

// Format returns the format selected for the source, or
// config.FormatUnknown in manual-entry mode.
func (l *Loader) Format() config.Format {
	return l.format
}

func (l *Loader) decode(ctx context.Context) (config.RawFieldMap, error) {
	if l.path == "" {
		return l.collector.Collect(ctx)
	}

	data, err := fsutil.ReadSource(l.path)
	if err != nil {
		return nil, &config.Error{Kind: config.KindSourceNotFound, Err: err}
	}
	ctxlog.FromContext(ctx).Debug("Decoding source.", "bytes", len(data))
	return l.decoder.Decode(ctx, bytes.NewReader(data))
}

// fail moves the loader to StateFailed and returns err as a *config.Error
// carrying the loader's path and format.
func (l *Loader) fail(ctx context.Context, err error) error {
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		kind := config.KindDecode
		if l.state == StateValidating {
			kind = config.KindValidation
		}
		cfgErr = &config.Error{Kind: kind, Err: err}
		err = cfgErr
	}
	if cfgErr.Path == "" {
		cfgErr.Path = l.path
	}
	if cfgErr.Format == config.FormatUnknown {
		cfgErr.Format = l.format
	}

	l.transition(ctx, StateFailed)
	ctxlog.FromContext(ctx).Debug("Load failed.", "kind", cfgErr.Kind.String(), "error", err)
	return err
}

func (l *Loader) transition(ctx context.Context, next State) {
	ctxlog.FromContext(ctx).Debug("Loader state changed.", "from", l.state.String(), "to", next.String())
	l.state = next
}

func supportedExtensions() string {
	names := make([]string, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		names = append(names, "."+f.String())
		if f == config.FormatYAML {
			names = append(names, ".yml")
		}
	}
	return strings.Join(names, ", ")
}

func (l *Loader) describe() string {
	if l.path == "" {
		return "manual"
	}
	return l.path
}

// Load is a convenience wrapper around New followed by (*Loader).Load.
func Load(ctx context.Context, path string, opts ...Option) (config.Record, error) {
	l, err := New(ctx, path, opts...)
	if err != nil {
		return config.Record{}, err
	}
	return l.Load(ctx)
}
