package ports

import (
	"context"

	"ppalog/internal/core/domain"
)

// AuthSession is what a successful login or registration hands back:
// the bearer token to persist and the identity it belongs to.
type AuthSession struct {
	Token    string
	Identity domain.Identity
}

// RegisterCorpsMemberRequest carries the corps member signup fields.
// The join code is redeemed as part of registration.
type RegisterCorpsMemberRequest struct {
	Name         string `validate:"required"`
	Email        string `validate:"required,email"`
	Password     string `validate:"required,min=8"`
	StateCode    string `validate:"required"`
	CallUpNumber string `validate:"required"`
	JoinCode     string `validate:"required"`
}

// RegisterSupervisorRequest carries the supervisor signup fields.
type RegisterSupervisorRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthSession, error)
	RegisterCorpsMember(ctx context.Context, req RegisterCorpsMemberRequest) (*AuthSession, error)
	RegisterSupervisor(ctx context.Context, req RegisterSupervisorRequest) (*AuthSession, error)
	CurrentUser(ctx context.Context) (*domain.Identity, error)
	JoinPPA(ctx context.Context, joinCode string) error
}

// LogAPI is the daily-log CRUD surface. Year and month of zero mean
// unfiltered.
type LogAPI interface {
	CreateLog(ctx context.Context, req domain.CreateLogRequest) (*domain.DailyLog, error)
	ListLogs(ctx context.Context, year, month int) ([]domain.DailyLog, error)
	UpdateLog(ctx context.Context, id string, req domain.UpdateLogRequest) (*domain.DailyLog, error)
	DeleteLog(ctx context.Context, id string) error
}

type ApprovalAPI interface {
	PendingApprovals(ctx context.Context) ([]domain.PendingLog, error)
	Approve(ctx context.Context, logID, comment string) error
	Reject(ctx context.Context, logID, comment string) error
}

type PPAAPI interface {
	CreatePPA(ctx context.Context, req domain.CreatePPARequest) (*domain.PPA, error)
	MyPPAs(ctx context.Context) ([]domain.PPA, error)
	ValidateJoinCode(ctx context.Context, code string) (bool, error)
}

type DashboardAPI interface {
	CorpsDashboard(ctx context.Context) (*domain.CorpsMemberStats, error)
	SupervisorDashboard(ctx context.Context) (*domain.SupervisorStats, error)
}

type ReportAPI interface {
	MonthlyReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error)
	MonthlyReportPDF(ctx context.Context, userID string, year, month int) ([]byte, error)
}

// Backend is the full HTTP API the dashboard consumes. The backend owns
// every business rule; the client re-validates only to fail fast.
type Backend interface {
	AuthAPI
	LogAPI
	ApprovalAPI
	PPAAPI
	DashboardAPI
	ReportAPI
}
