package app

import (
	"context"
	"fmt"

	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/ctxlog"
	"github.com/vk/rangeeval/internal/evaluator"
	"github.com/vk/rangeeval/internal/loader"
	"github.com/vk/rangeeval/internal/manual"
)

// Run loads the configuration, evaluates the function over the configured
// range, and prints the table. A failure is reported to the operator once,
// here, and returned as a *Failure.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "config_path", a.config.ConfigPath)

	rec, err := loader.Load(ctx, a.config.ConfigPath, loader.WithCollector(manual.New(a.in, a.outW)))
	if err != nil {
		return a.report(ctx, err)
	}

	if a.config.RenderFormat != "" {
		text, err := config.Render(rec, config.ParseFormat(a.config.RenderFormat))
		if err != nil {
			return a.report(ctx, err)
		}
		fmt.Fprint(a.outW, text)
	}

	points, err := evaluator.Evaluate(rec.Args())
	if err != nil {
		return a.report(ctx, fmt.Errorf("evaluation failed: %w", err))
	}
	a.logger.Debug("Function evaluated.", "points", len(points))

	a.printResults(rec, points)
	a.logger.Debug("App.Run method finished.")
	return nil
}
