package inbound

import (
	"net/http"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/entity"
)

type IssueRequest struct {
	Count int    `json:"count"`
	Label string `json:"label"`
}

type IssueResponse struct {
	BatchID string `json:"batch_id"`
	Seq     int64  `json:"seq"`
}

func (IssueResponse) StatusCode() int {
	return http.StatusAccepted
}

func (IssueResponse) Message() string {
	return "batch accepted"
}

type Batch struct {
	ID        string             `json:"id"`
	Seq       int64              `json:"seq"`
	Label     string             `json:"label,omitempty"`
	Status    entity.BatchStatus `json:"status"`
	Error     string             `json:"error,omitempty"`
	Requested int                `json:"requested"`
	IDs       []string           `json:"ids,omitempty"`
	CreatedAt int64              `json:"created_at"`
	EndedAt   int64              `json:"ended_at,omitempty"`
}

func toHTTPBatch(batch entity.Batch, withIDs bool) Batch {
	out := Batch{
		ID:        batch.ID,
		Seq:       batch.Seq,
		Label:     batch.Label,
		Status:    batch.Status,
		Error:     batch.Err,
		Requested: batch.Requested,
		CreatedAt: batch.CreatedAt,
		EndedAt:   batch.EndedAt,
	}
	if withIDs {
		out.IDs = batch.IDs
	}
	return out
}

type ListResponse struct {
	Batches  []Batch `json:"batches"`
	page     int
	pageSize int
	total    int
}

func (r ListResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}
