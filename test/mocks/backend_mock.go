// Package mocks provides mock implementations of port interfaces for
// testing. Services depend on the ports, so tests can swap the HTTP
// adapter for these without touching the core.
package mocks

import (
	"context"
	"sync"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// BackendMock implements ports.Backend. Each method records its call
// and delegates to the matching Fn hook when set; without a hook it
// returns zero values. Hooks let a test control resolution order for
// the stale-response cases.
type BackendMock struct {
	mu    sync.Mutex
	calls []string

	LoginFn               func(ctx context.Context, email, password string) (*ports.AuthSession, error)
	RegisterCorpsMemberFn func(ctx context.Context, req ports.RegisterCorpsMemberRequest) (*ports.AuthSession, error)
	RegisterSupervisorFn  func(ctx context.Context, req ports.RegisterSupervisorRequest) (*ports.AuthSession, error)
	CurrentUserFn         func(ctx context.Context) (*domain.Identity, error)
	JoinPPAFn             func(ctx context.Context, joinCode string) error

	CreateLogFn func(ctx context.Context, req domain.CreateLogRequest) (*domain.DailyLog, error)
	ListLogsFn  func(ctx context.Context, year, month int) ([]domain.DailyLog, error)
	UpdateLogFn func(ctx context.Context, id string, req domain.UpdateLogRequest) (*domain.DailyLog, error)
	DeleteLogFn func(ctx context.Context, id string) error

	PendingApprovalsFn func(ctx context.Context) ([]domain.PendingLog, error)
	ApproveFn          func(ctx context.Context, logID, comment string) error
	RejectFn           func(ctx context.Context, logID, comment string) error

	CreatePPAFn        func(ctx context.Context, req domain.CreatePPARequest) (*domain.PPA, error)
	MyPPAsFn           func(ctx context.Context) ([]domain.PPA, error)
	ValidateJoinCodeFn func(ctx context.Context, code string) (bool, error)

	CorpsDashboardFn      func(ctx context.Context) (*domain.CorpsMemberStats, error)
	SupervisorDashboardFn func(ctx context.Context) (*domain.SupervisorStats, error)

	MonthlyReportFn    func(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error)
	MonthlyReportPDFFn func(ctx context.Context, userID string, year, month int) ([]byte, error)
}

// Ensure BackendMock implements ports.Backend at compile time.
var _ ports.Backend = (*BackendMock)(nil)

func NewBackendMock() *BackendMock {
	return &BackendMock{}
}

// Calls returns the recorded call names in dispatch order.
func (m *BackendMock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times the named method was dispatched.
func (m *BackendMock) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (m *BackendMock) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *BackendMock) Login(ctx context.Context, email, password string) (*ports.AuthSession, error) {
	m.record("Login")
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return &ports.AuthSession{}, nil
}

func (m *BackendMock) RegisterCorpsMember(ctx context.Context, req ports.RegisterCorpsMemberRequest) (*ports.AuthSession, error) {
	m.record("RegisterCorpsMember")
	if m.RegisterCorpsMemberFn != nil {
		return m.RegisterCorpsMemberFn(ctx, req)
	}
	return &ports.AuthSession{}, nil
}

func (m *BackendMock) RegisterSupervisor(ctx context.Context, req ports.RegisterSupervisorRequest) (*ports.AuthSession, error) {
	m.record("RegisterSupervisor")
	if m.RegisterSupervisorFn != nil {
		return m.RegisterSupervisorFn(ctx, req)
	}
	return &ports.AuthSession{}, nil
}

func (m *BackendMock) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	m.record("CurrentUser")
	if m.CurrentUserFn != nil {
		return m.CurrentUserFn(ctx)
	}
	return &domain.Identity{}, nil
}

func (m *BackendMock) JoinPPA(ctx context.Context, joinCode string) error {
	m.record("JoinPPA")
	if m.JoinPPAFn != nil {
		return m.JoinPPAFn(ctx, joinCode)
	}
	return nil
}

func (m *BackendMock) CreateLog(ctx context.Context, req domain.CreateLogRequest) (*domain.DailyLog, error) {
	m.record("CreateLog")
	if m.CreateLogFn != nil {
		return m.CreateLogFn(ctx, req)
	}
	return &domain.DailyLog{}, nil
}

func (m *BackendMock) ListLogs(ctx context.Context, year, month int) ([]domain.DailyLog, error) {
	m.record("ListLogs")
	if m.ListLogsFn != nil {
		return m.ListLogsFn(ctx, year, month)
	}
	return nil, nil
}

func (m *BackendMock) UpdateLog(ctx context.Context, id string, req domain.UpdateLogRequest) (*domain.DailyLog, error) {
	m.record("UpdateLog")
	if m.UpdateLogFn != nil {
		return m.UpdateLogFn(ctx, id, req)
	}
	return &domain.DailyLog{}, nil
}

func (m *BackendMock) DeleteLog(ctx context.Context, id string) error {
	m.record("DeleteLog")
	if m.DeleteLogFn != nil {
		return m.DeleteLogFn(ctx, id)
	}
	return nil
}

func (m *BackendMock) PendingApprovals(ctx context.Context) ([]domain.PendingLog, error) {
	m.record("PendingApprovals")
	if m.PendingApprovalsFn != nil {
		return m.PendingApprovalsFn(ctx)
	}
	return nil, nil
}

func (m *BackendMock) Approve(ctx context.Context, logID, comment string) error {
	m.record("Approve")
	if m.ApproveFn != nil {
		return m.ApproveFn(ctx, logID, comment)
	}
	return nil
}

func (m *BackendMock) Reject(ctx context.Context, logID, comment string) error {
	m.record("Reject")
	if m.RejectFn != nil {
		return m.RejectFn(ctx, logID, comment)
	}
	return nil
}

func (m *BackendMock) CreatePPA(ctx context.Context, req domain.CreatePPARequest) (*domain.PPA, error) {
	m.record("CreatePPA")
	if m.CreatePPAFn != nil {
		return m.CreatePPAFn(ctx, req)
	}
	return &domain.PPA{}, nil
}

func (m *BackendMock) MyPPAs(ctx context.Context) ([]domain.PPA, error) {
	m.record("MyPPAs")
	if m.MyPPAsFn != nil {
		return m.MyPPAsFn(ctx)
	}
	return nil, nil
}

func (m *BackendMock) ValidateJoinCode(ctx context.Context, code string) (bool, error) {
	m.record("ValidateJoinCode")
	if m.ValidateJoinCodeFn != nil {
		return m.ValidateJoinCodeFn(ctx, code)
	}
	return false, nil
}

func (m *BackendMock) CorpsDashboard(ctx context.Context) (*domain.CorpsMemberStats, error) {
	m.record("CorpsDashboard")
	if m.CorpsDashboardFn != nil {
		return m.CorpsDashboardFn(ctx)
	}
	return &domain.CorpsMemberStats{}, nil
}

func (m *BackendMock) SupervisorDashboard(ctx context.Context) (*domain.SupervisorStats, error) {
	m.record("SupervisorDashboard")
	if m.SupervisorDashboardFn != nil {
		return m.SupervisorDashboardFn(ctx)
	}
	return &domain.SupervisorStats{}, nil
}

func (m *BackendMock) MonthlyReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error) {
	m.record("MonthlyReport")
	if m.MonthlyReportFn != nil {
		return m.MonthlyReportFn(ctx, userID, year, month)
	}
	return &domain.MonthlyReport{}, nil
}

func (m *BackendMock) MonthlyReportPDF(ctx context.Context, userID string, year, month int) ([]byte, error) {
	m.record("MonthlyReportPDF")
	if m.MonthlyReportPDFFn != nil {
		return m.MonthlyReportPDFFn(ctx, userID, year, month)
	}
	return nil, nil
}
