package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppalog/internal/core/domain"
	"ppalog/test/mocks"
)

func TestSupervisorOverviewData_JoinsAllThreeFetches(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.SupervisorDashboardFn = func(ctx context.Context) (*domain.SupervisorStats, error) {
		return &domain.SupervisorStats{AssignedCorpsMembers: 3}, nil
	}
	backend.MyPPAsFn = func(ctx context.Context) ([]domain.PPA, error) {
		return []domain.PPA{{ID: "p1", Name: "Tech Hub"}}, nil
	}
	backend.PendingApprovalsFn = func(ctx context.Context) ([]domain.PendingLog, error) {
		return []domain.PendingLog{{ID: "l1"}}, nil
	}
	dash := NewDashboard(backend, backend, backend)

	overview, err := dash.SupervisorOverviewData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, overview.Stats.AssignedCorpsMembers)
	assert.Len(t, overview.PPAs, 1)
	assert.Len(t, overview.Pending, 1)
}

func TestSupervisorOverviewData_AnyFailureFailsTheView(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.MyPPAsFn = func(ctx context.Context) ([]domain.PPA, error) {
		return nil, &domain.NetworkError{Op: "GET /ppa/mine/all"}
	}
	dash := NewDashboard(backend, backend, backend)

	_, err := dash.SupervisorOverviewData(context.Background())
	var ne *domain.NetworkError
	assert.ErrorAs(t, err, &ne)
}

func TestReportsMonthly_RequiresLogin(t *testing.T) {
	backend := mocks.NewBackendMock()
	session := NewSession(backend, mocks.NewCredStoreMock(), nil)
	reports := NewReports(backend, session)

	_, err := reports.Monthly(context.Background(), 2026, 3)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, backend.CallCount("MonthlyReport"))
}

func TestReportsMonthly_ScopedToLoggedInUser(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.CurrentUserFn = func(ctx context.Context) (*domain.Identity, error) {
		return &domain.Identity{ID: "u1", Role: domain.RoleCorpsMember}, nil
	}
	var gotUser string
	backend.MonthlyReportFn = func(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error) {
		gotUser = userID
		return &domain.MonthlyReport{Year: year, Month: month}, nil
	}
	session := NewSession(backend, mocks.NewCredStoreMock(), nil)
	require.NoError(t, session.Refresh(context.Background()))
	reports := NewReports(backend, session)

	report, err := reports.Monthly(context.Background(), 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, "u1", gotUser)
	assert.Equal(t, 3, report.Month)
}

func TestReportsMonthly_PeriodChecked(t *testing.T) {
	backend := mocks.NewBackendMock()
	backend.CurrentUserFn = func(ctx context.Context) (*domain.Identity, error) {
		return &domain.Identity{ID: "u1"}, nil
	}
	session := NewSession(backend, mocks.NewCredStoreMock(), nil)
	require.NoError(t, session.Refresh(context.Background()))
	reports := NewReports(backend, session)

	for _, period := range [][2]int{{1999, 3}, {2026, 0}, {2026, 13}} {
		_, err := reports.Monthly(context.Background(), period[0], period[1])
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	assert.Zero(t, backend.CallCount("MonthlyReport"))
}
