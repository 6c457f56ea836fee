package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
	"github.com/vk/rangeeval/internal/evaluator"
)

// Failure wraps an error that has already been reported to the operator.
type Failure struct {
	Err error
}

func (f *Failure) Error() string { return f.Err.Error() }

func (f *Failure) Unwrap() error { return f.Err }

type styles struct {
	title lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
}

// newStyles binds the styles to w so color is only emitted on a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// headline names the failure class shown to the operator.
func headline(err error) string {
	if errors.Is(err, evaluator.ErrNonPositiveStep) {
		return "Evaluation error"
	}
	switch config.KindOf(err) {
	case config.KindSourceNotFound:
		return "An error occurred"
	case config.KindUnsupportedFormat, config.KindDecode, config.KindValidation, config.KindManualEntry:
		return "Processing error"
	}
	return "Unexpected error"
}

// report logs err, prints the single operator-facing line, and wraps err in
// a *Failure.
func (a *App) report(ctx context.Context, err error) error {
	ctxlog.FromContext(ctx).Error("Run failed.", "kind", config.KindOf(err).String(), "error", err)

	line := fmt.Sprintf("%s: %v", headline(err), err)
	fmt.Fprintln(a.outW, a.styles.fail.Render(line))
	return &Failure{Err: err}
}

func (a *App) printResults(rec config.Record, points []evaluator.Point) {
	fmt.Fprintln(a.outW, a.styles.title.Render(rec.String()))
	fmt.Fprintln(a.outW, a.styles.dim.Render("Function: "+evaluator.Formula))
	if len(points) == 0 {
		fmt.Fprintln(a.outW, a.styles.dim.Render("Empty range, nothing to evaluate."))
		return
	}
	for _, p := range points {
		fmt.Fprintf(a.outW, "x: %d >> y: %g\n", p.X, p.Y)
	}
}
