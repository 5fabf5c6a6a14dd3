package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// Session holds the current authenticated identity for the running
// process. It is created once at startup and injected into everything
// that needs to know who is logged in; there is no ambient global.
type Session struct {
	backend  ports.AuthAPI
	creds    ports.CredentialStore
	validate *validator.Validate
	logger   *slog.Logger

	mu       sync.Mutex
	identity *domain.Identity
}

func NewSession(backend ports.AuthAPI, creds ports.CredentialStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		backend:  backend,
		creds:    creds,
		validate: newValidator(),
		logger:   logger,
	}
}

// Current returns the identity, or nil when nobody is logged in.
func (s *Session) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

// Restore loads the stored credential and fetches the identity it
// belongs to. A missing, expired, or rejected token degrades to
// logged-out: the token is cleared and no error reaches the caller.
func (s *Session) Restore(ctx context.Context) {
	token, err := s.creds.Load()
	if err != nil || token == "" {
		s.setIdentity(nil)
		return
	}

	// Spare the round-trip when the token is visibly past its expiry.
	if tokenExpired(token) {
		s.logger.Debug("stored token expired, clearing")
		s.clearToken()
		s.setIdentity(nil)
		return
	}

	identity, err := s.backend.CurrentUser(ctx)
	if err != nil {
		s.logger.Debug("identity restore failed, clearing token", slog.String("error", err.Error()))
		s.clearToken()
		s.setIdentity(nil)
		return
	}
	s.setIdentity(identity)
}

// Login exchanges credentials for a token and identity. The token is
// persisted only on success.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("credentials", "email and password are required")
	}

	auth, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(auth)
}

// RegisterCorpsMember signs up a corps member. The join code binds the
// member to a PPA as part of registration, so it is format-checked
// before dispatch.
func (s *Session) RegisterCorpsMember(ctx context.Context, req ports.RegisterCorpsMemberRequest) (*domain.Identity, error) {
	req.JoinCode = domain.NormalizeJoinCode(req.JoinCode)
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}
	if !domain.ValidJoinCodeFormat(req.JoinCode) {
		return nil, domain.NewValidationError("JoinCode", "must match the format PPA-XXXXXX")
	}

	auth, err := s.backend.RegisterCorpsMember(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.establish(auth)
}

// RegisterSupervisor signs up a supervisor.
func (s *Session) RegisterSupervisor(ctx context.Context, req ports.RegisterSupervisorRequest) (*domain.Identity, error) {
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}

	auth, err := s.backend.RegisterSupervisor(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.establish(auth)
}

// Logout clears the persisted token and in-memory identity. Purely
// local: no network call.
func (s *Session) Logout() {
	s.clearToken()
	s.setIdentity(nil)
}

// clearToken removes the stored credential. A failed removal leaves a
// live token on disk, which the user should hear about.
func (s *Session) clearToken() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("could not remove the stored token", slog.String("error", err.Error()))
	}
}

// Refresh re-fetches the identity from the backend. Used after
// operations that change its derived fields, like joining a PPA.
func (s *Session) Refresh(ctx context.Context) error {
	identity, err := s.backend.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.setIdentity(identity)
	return nil
}

func (s *Session) establish(auth *ports.AuthSession) (*domain.Identity, error) {
	if err := s.creds.Save(auth.Token); err != nil {
		return nil, err
	}
	identity := auth.Identity
	s.setIdentity(&identity)
	return s.Current(), nil
}

func (s *Session) setIdentity(identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

// tokenExpired inspects the exp claim of the stored token without
// verifying the signature; the backend remains the authority on
// validity. Tokens that are not parseable JWTs are left to the backend
// to judge.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
