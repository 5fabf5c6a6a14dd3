package services

import (
	"context"
	"log/slog"
	"sync"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// JoinState is where the onboarding flow currently stands.
type JoinState string

const (
	JoinIdle       JoinState = "idle"
	JoinValidating JoinState = "validating"
	JoinValid      JoinState = "valid"
	JoinInvalid    JoinState = "invalid"
	JoinJoining    JoinState = "joining"
	JoinJoined     JoinState = "joined"
)

// JoinFlow binds a corps member to a PPA via a join code: validate the
// code's format and liveness, then consume it. Joining is one-time and
// irreversible from the client; there is no leave flow.
type JoinFlow struct {
	ppa     ports.PPAAPI
	auth    ports.AuthAPI
	session *Session
	logger  *slog.Logger
	instr   ports.Instrumentation

	mu     sync.Mutex
	code   string
	state  JoinState
	valSeq uint64
}

func NewJoinFlow(ppa ports.PPAAPI, auth ports.AuthAPI, session *Session, instr ports.Instrumentation, logger *slog.Logger) *JoinFlow {
	if logger == nil {
		logger = slog.Default()
	}
	if instr == nil {
		instr = ports.NopInstrumentation{}
	}
	return &JoinFlow{
		ppa:     ppa,
		auth:    auth,
		session: session,
		logger:  logger,
		instr:   instr,
		state:   JoinIdle,
	}
}

// Guard decides whether the flow may run for the given identity.
// Already-bound members and non-corps identities are turned away.
func (f *JoinFlow) Guard(identity *domain.Identity) bool {
	if identity == nil {
		return false
	}
	if identity.Role != domain.RoleCorpsMember {
		return false
	}
	return !identity.HasPPA()
}

// State returns the flow state and the normalized code it refers to.
func (f *JoinFlow) State() (JoinState, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.code
}

// SetInput feeds the flow a new keystroke's worth of input. The code is
// normalized; a syntactically complete code triggers a backend liveness
// check whose result only applies while it is still the newest check
// issued — earlier in-flight checks are discarded when superseded.
func (f *JoinFlow) SetInput(ctx context.Context, raw string) JoinState {
	code := domain.NormalizeJoinCode(raw)

	f.mu.Lock()
	if f.state == JoinJoined || f.state == JoinJoining {
		state := f.state
		f.mu.Unlock()
		return state
	}
	f.code = code
	f.valSeq++
	seq := f.valSeq

	if !domain.ValidJoinCodeFormat(code) {
		if code == "" {
			f.state = JoinIdle
		} else {
			f.state = JoinInvalid
		}
		state := f.state
		f.mu.Unlock()
		return state
	}
	f.state = JoinValidating
	f.mu.Unlock()

	ok, err := f.ppa.ValidateJoinCode(ctx, code)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.valSeq {
		f.instr.StaleResponseDropped("join")
		f.logger.Debug("dropping superseded join-code validation", slog.String("code", code))
		return f.state
	}
	if err != nil || !ok {
		f.state = JoinInvalid
		return f.state
	}
	f.state = JoinValid
	return f.state
}

// Join consumes the validated code. Permitted only from Valid; on
// success the session identity is refreshed so its PPA binding is
// visible immediately, then the flow reaches its terminal Joined state.
func (f *JoinFlow) Join(ctx context.Context) error {
	f.mu.Lock()
	if f.state != JoinValid {
		f.mu.Unlock()
		return domain.NewValidationError("JoinCode", "please enter a valid join code")
	}
	code := f.code
	f.state = JoinJoining
	f.mu.Unlock()

	if err := f.auth.JoinPPA(ctx, code); err != nil {
		f.mu.Lock()
		f.state = JoinValid
		f.mu.Unlock()
		return err
	}

	if err := f.session.Refresh(ctx); err != nil {
		// The join itself succeeded; the identity will catch up on the
		// next restore.
		f.logger.Warn("identity refresh after join failed", slog.String("error", err.Error()))
	}

	f.mu.Lock()
	f.state = JoinJoined
	f.mu.Unlock()
	return nil
}
