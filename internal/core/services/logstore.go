package services

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// LogStore caches the calling corps member's visible log set, filtered
// by year/month. The cache is replaced wholesale by Load; mutations
// round-trip to the backend and then reload rather than patching
// locally, so server-computed fields (status, timestamps) are always
// authoritative.
type LogStore struct {
	backend  ports.LogAPI
	validate *validator.Validate
	logger   *slog.Logger
	instr    ports.Instrumentation

	mu       sync.Mutex
	logs     []domain.DailyLog
	year     int
	month    int
	loadSeq  uint64
	mutating bool
}

func NewLogStore(backend ports.LogAPI, instr ports.Instrumentation, logger *slog.Logger) *LogStore {
	if logger == nil {
		logger = slog.Default()
	}
	if instr == nil {
		instr = ports.NopInstrumentation{}
	}
	return &LogStore{
		backend:  backend,
		validate: newValidator(),
		logger:   logger,
		instr:    instr,
	}
}

// Logs returns a copy of the cached set.
func (s *LogStore) Logs() []domain.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DailyLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// Filter returns the year/month the cache was last loaded for.
func (s *LogStore) Filter() (year, month int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year, s.month
}

// Load fetches the caller's logs, optionally filtered (zero means
// unfiltered), and replaces the cache. Loads are ordered by a sequence
// number taken at dispatch: if a newer load is issued before this one
// resolves, the resolution is dropped and ErrSuperseded returned, so a
// slow early response can never overwrite a later filter's result.
func (s *LogStore) Load(ctx context.Context, year, month int) ([]domain.DailyLog, error) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	logs, err := s.backend.ListLogs(ctx, year, month)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		s.instr.StaleResponseDropped("logstore")
		s.logger.Debug("dropping stale log load", slog.Uint64("seq", seq), slog.Uint64("latest", s.loadSeq))
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	s.logs = logs
	s.year, s.month = year, month
	out := make([]domain.DailyLog, len(logs))
	copy(out, logs)
	return out, nil
}

// Create records a new log, as draft or submitted, then reloads the
// cache under the current filter.
func (s *LogStore) Create(ctx context.Context, req domain.CreateLogRequest) (*domain.DailyLog, error) {
	if err := s.checkEntry(req, req.Hours); err != nil {
		return nil, err
	}
	if err := s.beginMutation(); err != nil {
		return nil, err
	}
	defer s.endMutation()

	created, err := s.backend.CreateLog(ctx, req)
	if err != nil {
		return nil, err
	}
	s.reload(ctx)
	return created, nil
}

// Update edits a log the caller owns. Refused locally when the cached
// status grants no edit capability; an approved log is immutable.
func (s *LogStore) Update(ctx context.Context, id string, req domain.UpdateLogRequest) (*domain.DailyLog, error) {
	if err := s.checkEntry(req, req.Hours); err != nil {
		return nil, err
	}
	if cached := s.find(id); cached != nil {
		if !domain.Capabilities(domain.RoleCorpsMember, cached.Status).Allows(domain.ActionEdit) {
			return nil, ErrActionNotAllowed
		}
	}
	if err := s.beginMutation(); err != nil {
		return nil, err
	}
	defer s.endMutation()

	updated, err := s.backend.UpdateLog(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.reload(ctx)
	return updated, nil
}

// Delete removes a log permanently. The confirmed flag is the explicit
// user confirmation step; without it nothing is dispatched.
func (s *LogStore) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if cached := s.find(id); cached != nil {
		if !domain.Capabilities(domain.RoleCorpsMember, cached.Status).Allows(domain.ActionDelete) {
			return ErrActionNotAllowed
		}
	}
	if err := s.beginMutation(); err != nil {
		return err
	}
	defer s.endMutation()

	if err := s.backend.DeleteLog(ctx, id); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

// reload re-syncs the cache after a mutation so the caller sees server
// truth before any success state is shown. A reload failure leaves the
// previous cache in place; the mutation itself already succeeded.
func (s *LogStore) reload(ctx context.Context) {
	year, month := s.Filter()
	if _, err := s.Load(ctx, year, month); err != nil {
		s.logger.Warn("post-mutation reload failed", slog.String("error", err.Error()))
	}
}

func (s *LogStore) find(id string) *domain.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.logs {
		if s.logs[i].ID == id {
			cp := s.logs[i]
			return &cp
		}
	}
	return nil
}

func (s *LogStore) beginMutation() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutating {
		return ErrBusy
	}
	s.mutating = true
	return nil
}

func (s *LogStore) endMutation() {
	s.mu.Lock()
	s.mutating = false
	s.mu.Unlock()
}

// checkEntry enforces the shared entry rules before dispatch: the
// tagged description minimum plus the hours range at one-decimal
// granularity, which a static tag cannot express.
func (s *LogStore) checkEntry(req any, hours float64) error {
	if err := checkStruct(s.validate, req); err != nil {
		return err
	}
	if hours <= 0 || hours > 24 {
		return domain.NewValidationError("Hours", "must be between 0.1 and 24")
	}
	tenths := hours * 10
	if math.Abs(tenths-math.Round(tenths)) > 1e-9 {
		return domain.NewValidationError("Hours", "must be given in 0.1 hour steps")
	}
	return nil
}
