package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// MinRejectCommentLen is the shortest rejection reason accepted before
// dispatch. One threshold for every surface; the backend stays the
// final authority.
const MinRejectCommentLen = 5

// ApprovalQueue is the supervisor-scoped projection of submitted logs
// awaiting decision. Decisions are per-item guarded: while one is in
// flight for a log id, a second decision for the same id is refused.
type ApprovalQueue struct {
	backend ports.ApprovalAPI
	logger  *slog.Logger
	instr   ports.Instrumentation

	mu       sync.Mutex
	pending  []domain.PendingLog
	loadSeq  uint64
	inFlight map[string]bool
}

func NewApprovalQueue(backend ports.ApprovalAPI, instr ports.Instrumentation, logger *slog.Logger) *ApprovalQueue {
	if logger == nil {
		logger = slog.Default()
	}
	if instr == nil {
		instr = ports.NopInstrumentation{}
	}
	return &ApprovalQueue{
		backend:  backend,
		logger:   logger,
		instr:    instr,
		inFlight: make(map[string]bool),
	}
}

// Pending returns a copy of the cached projection.
func (q *ApprovalQueue) Pending() []domain.PendingLog {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.PendingLog, len(q.pending))
	copy(out, q.pending)
	return out
}

// Processing reports whether a decision for the given log id is in
// flight, which is when its action buttons stay disabled.
func (q *ApprovalQueue) Processing(logID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inFlight[logID]
}

// LoadPending fetches all submitted logs across the supervisor's
// assigned corps members, with the same last-dispatch-wins guard as the
// log store.
func (q *ApprovalQueue) LoadPending(ctx context.Context) ([]domain.PendingLog, error) {
	q.mu.Lock()
	q.loadSeq++
	seq := q.loadSeq
	q.mu.Unlock()

	pending, err := q.backend.PendingApprovals(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	if seq != q.loadSeq {
		q.instr.StaleResponseDropped("approvals")
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	q.pending = pending
	out := make([]domain.PendingLog, len(pending))
	copy(out, pending)
	return out, nil
}

// Approve records an approval. The comment is optional.
func (q *ApprovalQueue) Approve(ctx context.Context, logID, comment string) error {
	return q.decide(ctx, logID, func(ctx context.Context) error {
		return q.backend.Approve(ctx, logID, strings.TrimSpace(comment))
	})
}

// Reject records a rejection. The trimmed comment is mandatory and must
// meet the minimum length; nothing is dispatched otherwise.
func (q *ApprovalQueue) Reject(ctx context.Context, logID, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return domain.NewValidationError("Comment", "a reason for rejection is required")
	}
	if len(comment) < MinRejectCommentLen {
		return domain.NewValidationError("Comment", fmt.Sprintf("reason must be at least %d characters long", MinRejectCommentLen))
	}
	return q.decide(ctx, logID, func(ctx context.Context) error {
		return q.backend.Reject(ctx, logID, comment)
	})
}

func (q *ApprovalQueue) decide(ctx context.Context, logID string, call func(context.Context) error) error {
	if err := q.begin(logID); err != nil {
		return err
	}
	defer q.end(logID)

	if err := call(ctx); err != nil {
		return err
	}

	// Success removes the item from the projection via a full reload.
	if _, err := q.LoadPending(ctx); err != nil {
		q.logger.Warn("pending reload failed after decision", slog.String("log_id", logID), slog.String("error", err.Error()))
	}
	return nil
}

func (q *ApprovalQueue) begin(logID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.inFlight[logID] {
		return ErrDecisionInFlight
	}
	q.inFlight[logID] = true
	return nil
}

func (q *ApprovalQueue) end(logID string) {
	q.mu.Lock()
	delete(q.inFlight, logID)
	q.mu.Unlock()
}
