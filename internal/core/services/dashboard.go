package services

import (
	"context"
	"sync"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// Dashboard assembles the role-specific landing views.
type Dashboard struct {
	backend ports.DashboardAPI
	ppa     ports.PPAAPI
	appr    ports.ApprovalAPI
}

func NewDashboard(backend ports.DashboardAPI, ppa ports.PPAAPI, appr ports.ApprovalAPI) *Dashboard {
	return &Dashboard{backend: backend, ppa: ppa, appr: appr}
}

// CorpsStats loads the corps member summary.
func (d *Dashboard) CorpsStats(ctx context.Context) (*domain.CorpsMemberStats, error) {
	return d.backend.CorpsDashboard(ctx)
}

// SupervisorOverview is everything the supervisor landing view shows.
type SupervisorOverview struct {
	Stats   *domain.SupervisorStats
	PPAs    []domain.PPA
	Pending []domain.PendingLog
}

// SupervisorOverviewData issues the three independent fetches
// concurrently and joins them when all complete. They have no required
// relative ordering; the first error wins.
func (d *Dashboard) SupervisorOverviewData(ctx context.Context) (*SupervisorOverview, error) {
	var (
		wg       sync.WaitGroup
		overview SupervisorOverview

		statsErr, ppaErr, pendErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		overview.Stats, statsErr = d.backend.SupervisorDashboard(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.PPAs, ppaErr = d.ppa.MyPPAs(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.Pending, pendErr = d.appr.PendingApprovals(ctx)
	}()
	wg.Wait()

	for _, err := range []error{statsErr, ppaErr, pendErr} {
		if err != nil {
			return nil, err
		}
	}
	return &overview, nil
}
