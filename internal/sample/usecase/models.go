package usecase

import "github.com/kchason/CDO-Utility-Local-UUID/internal/sample/entity"

type IssueResult struct {
	BatchID string
	Seq     int64
}

type BatchResult struct {
	Batch entity.Batch
}

type ListResult struct {
	Batches  []entity.Batch
	Page     int
	PageSize int
	Total    int
}
