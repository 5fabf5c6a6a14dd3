package backend

import (
	"context"

	"ppalog/internal/core/domain"
)

func (c *Client) CorpsDashboard(ctx context.Context) (*domain.CorpsMemberStats, error) {
	var resp corpsStatsDTO
	if err := c.get(ctx, "corps_dashboard", "/dashboard/corps", &resp); err != nil {
		return nil, err
	}
	return &domain.CorpsMemberStats{
		TotalLogsThisMonth: resp.TotalLogsThisMonth,
		ApprovedLogs:       resp.ApprovedLogs,
		RejectedLogs:       resp.RejectedLogs,
		PendingLogs:        resp.PendingLogs,
		DraftLogs:          resp.DraftLogs,
	}, nil
}

func (c *Client) SupervisorDashboard(ctx context.Context) (*domain.SupervisorStats, error) {
	var resp supervisorStatsDTO
	if err := c.get(ctx, "supervisor_dashboard", "/dashboard/supervisor", &resp); err != nil {
		return nil, err
	}

	stats := &domain.SupervisorStats{
		AssignedCorpsMembers: resp.AssignedCorpsMembers,
		PendingLogsCount:     resp.PendingLogsCount,
	}
	for _, s := range resp.Students {
		stats.CorpsMembers = append(stats.CorpsMembers, domain.AssignedCorpsMember{
			ID:        s.ID,
			Name:      s.Name,
			Email:     s.Email,
			StateCode: s.StateCode,
			PPA:       s.PPA,
		})
	}
	return stats, nil
}
