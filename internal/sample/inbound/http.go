package inbound

import (
	"context"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgrouter"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/usecase"
)

type uc interface {
	Issue(ctx context.Context, count int, label string) (usecase.IssueResult, error)
	Get(ctx context.Context, batchID string) (usecase.BatchResult, error)
	List(ctx context.Context, page, pageSize int) (usecase.ListResult, error)
	Delete(ctx context.Context, batchID string) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/batches", end.Issue)
	r.GET("/batches", end.List) // ?page=&page_size=
	r.GET("/batches/:id", end.Get)
	r.DELETE("/batches/:id", end.Delete)
}
