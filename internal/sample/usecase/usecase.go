package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgerror"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkguid"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/entity"
)

// MaxBatchSize bounds a single issuance so a bad request cannot pin a worker.
const MaxBatchSize = 10000

type Store interface {
	CreateBatch(ctx context.Context, batch entity.Batch) error
	UpdateBatch(ctx context.Context, batchID string, fn func(batch *entity.Batch)) error
	GetBatch(ctx context.Context, batchID string) (entity.Batch, error)
	ListBatches(ctx context.Context, page, pageSize int) ([]entity.Batch, int, error)
	DeleteBatch(ctx context.Context, batchID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.BatchIssuedEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store   Store
	Events  EventPublisher
	Runner  Runner
	Clock   Clock
	ID      pkguid.StringID
	Seq     pkguid.NumberID
	RootCtx context.Context
}

// Usecase issues batches of sample identifiers.
//
// The injected StringID decides whether the identifiers are random or
// deterministic; this layer only sequences calls against it, so a
// deterministic provider yields byte-identical batches across runs.
type Usecase struct {
	store   Store
	events  EventPublisher
	runner  Runner
	clock   Clock
	id      pkguid.StringID
	seq     pkguid.NumberID
	rootCtx context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:   dep.Store,
		events:  dep.Events,
		runner:  dep.Runner,
		clock:   clock,
		id:      dep.ID,
		seq:     dep.Seq,
		rootCtx: root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Issue creates a batch record and generates its identifiers in the
// background. The response carries the batch ID so callers can poll.
func (u *Usecase) Issue(ctx context.Context, count int, label string) (IssueResult, error) {
	if u.store == nil || u.id == nil || u.runner == nil {
		return IssueResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if count < 1 || count > MaxBatchSize {
		return IssueResult{}, pkgerror.NewInvalidInput(errors.New("count must be between 1 and 10000"))
	}

	batch := entity.Batch{
		ID:        u.id.Generate(),
		Label:     label,
		Status:    entity.BatchStatusQueued,
		Requested: count,
		CreatedAt: u.clock.Now().Unix(),
	}
	if u.seq != nil {
		batch.Seq = u.seq.Generate()
	}

	if err := u.store.CreateBatch(ctx, batch); err != nil {
		return IssueResult{}, normalizeErr(err)
	}

	u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		if err := u.generate(ctx, batch.ID, count); err != nil {
			slog.ErrorContext(ctx, "batch generation failed", "batch_id", batch.ID, "error", err)
			return err
		}
		return nil
	})

	return IssueResult{BatchID: batch.ID, Seq: batch.Seq}, nil
}

// Get returns a batch and its identifiers.
func (u *Usecase) Get(ctx context.Context, batchID string) (BatchResult, error) {
	if batchID == "" {
		return BatchResult{}, pkgerror.NewInvalidInput(errors.New("batch_id is required"))
	}

	batch, err := u.store.GetBatch(ctx, batchID)
	if err != nil {
		return BatchResult{}, mapStoreErr(err)
	}

	return BatchResult{Batch: batch}, nil
}

// List returns a page of batch summaries, newest first.
func (u *Usecase) List(ctx context.Context, page, pageSize int) (ListResult, error) {
	if page < 1 || pageSize < 1 {
		return ListResult{}, pkgerror.NewInvalidInput(errors.New("invalid pagination"))
	}

	batches, total, err := u.store.ListBatches(ctx, page, pageSize)
	if err != nil {
		return ListResult{}, mapStoreErr(err)
	}

	return ListResult{
		Batches:  batches,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// Delete removes a batch record.
func (u *Usecase) Delete(ctx context.Context, batchID string) error {
	if batchID == "" {
		return pkgerror.NewInvalidInput(errors.New("batch_id is required"))
	}

	if err := u.store.DeleteBatch(ctx, batchID); err != nil {
		return mapStoreErr(err)
	}

	return nil
}

func (u *Usecase) generate(ctx context.Context, batchID string, count int) error {
	if err := u.store.UpdateBatch(ctx, batchID, func(batch *entity.Batch) {
		batch.Status = entity.BatchStatusGenerating
	}); err != nil {
		return err
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, u.id.Generate())
	}

	endedAt := u.clock.Now().Unix()
	if err := u.store.UpdateBatch(ctx, batchID, func(batch *entity.Batch) {
		batch.Status = entity.BatchStatusDone
		batch.IDs = ids
		batch.EndedAt = endedAt
	}); err != nil {
		return err
	}

	if u.events != nil {
		event := entity.BatchIssuedEvent{
			EventID: u.id.Generate(),
			BatchID: batchID,
			Count:   len(ids),
		}
		if pubErr := u.events.Publish(ctx, event); pubErr != nil {
			slog.WarnContext(ctx, "failed to publish event", "batch_id", batchID, "event_id", event.EventID, "error", pubErr)
		}
	}

	return nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("batch not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
