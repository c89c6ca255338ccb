package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgerror"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Issue(ctx context.Context, r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}

	var req IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidInput(errors.New("invalid request body"))
	}

	result, err := h.uc.Issue(ctx, req.Count, strings.TrimSpace(req.Label))
	if err != nil {
		return nil, err
	}

	return IssueResponse{BatchID: result.BatchID, Seq: result.Seq}, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, r *http.Request) (any, error) {
	batchID := pkgrouter.GetParam(ctx, "id")

	result, err := h.uc.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}

	return toHTTPBatch(result.Batch, true), nil
}

func (h *HTTPEndpoint) List(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	batches := make([]Batch, 0, len(result.Batches))
	for _, batch := range result.Batches {
		batches = append(batches, toHTTPBatch(batch, false))
	}

	return ListResponse{
		Batches:  batches,
		page:     result.Page,
		pageSize: result.PageSize,
		total:    result.Total,
	}, nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, r *http.Request) (any, error) {
	batchID := pkgrouter.GetParam(ctx, "id")

	if err := h.uc.Delete(ctx, batchID); err != nil {
		return nil, err
	}

	return nil, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		if value > 100 {
			value = 100
		}
		pageSize = value
	}

	return page, pageSize, nil
}
