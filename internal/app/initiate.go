package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	localuuid "github.com/kchason/CDO-Utility-Local-UUID"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgconfig"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgrouter"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgroutine"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkguid"
	"github.com/rs/cors"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)

	// Correlation IDs stay random on purpose; only the batch identifiers go
	// through the (possibly deterministic) provider.
	a.cid = pkguid.NewUUID()

	a.provider = localuuid.NewProvider(localuuid.Options{})
	slog.Info("identifier provider configured", "mode", a.provider.Mode().String())

	seq, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake generator", "error", err)
		os.Exit(1)
	}
	a.seq = seq
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.cid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
