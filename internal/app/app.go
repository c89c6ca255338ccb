package app

import (
	"context"
	"net/http"

	localuuid "github.com/kchason/CDO-Utility-Local-UUID"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgconfig"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkglog"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgrouter"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgroutine"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	provider  *localuuid.Provider
	cid       pkguid.StringID
	seq       pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
