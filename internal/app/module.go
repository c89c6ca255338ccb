package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.sample.enabled") {
		closer, err := sample.New(sample.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.provider,
			Seq:       a.seq,
		})
		if err != nil {
			slog.Error("failed to init module sample", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Sample"] = closer
		}
	}
}
