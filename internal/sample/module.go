package sample

import (
	"context"
	"time"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgconfig"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgrouter"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgroutine"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkguid"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/event"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/inbound"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/store"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/usecase"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
	Seq       pkguid.NumberID
}

func New(dep Dependency) (func(context.Context) error, error) {
	storage := store.NewInMemoryStore()
	bus := event.NewBus(256)
	consumer := event.NewAuditConsumer(bus, event.LogAuditor{}, event.ConsumerConfig{
		Workers:     2,
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Events:  bus,
		Runner:  dep.Goroutine,
		Clock:   nil,
		ID:      dep.ID,
		Seq:     dep.Seq,
		RootCtx: dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}
