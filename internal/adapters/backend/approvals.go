package backend

import (
	"context"

	"ppalog/internal/core/domain"
)

type decisionDTO struct {
	Comment string `json:"comment,omitempty"`
}

type rejectDTO struct {
	Comment string `json:"comment"`
}

func (c *Client) PendingApprovals(ctx context.Context) ([]domain.PendingLog, error) {
	var resp []pendingLogDTO
	if err := c.get(ctx, "pending_approvals", "/approvals/pending", &resp); err != nil {
		return nil, err
	}
	pending := make([]domain.PendingLog, 0, len(resp))
	for i := range resp {
		pending = append(pending, resp[i].toDomain())
	}
	return pending, nil
}

func (c *Client) Approve(ctx context.Context, logID, comment string) error {
	return c.post(ctx, "approve_log", "/approvals/"+logID+"/approve", decisionDTO{Comment: comment}, nil)
}

func (c *Client) Reject(ctx context.Context, logID, comment string) error {
	return c.post(ctx, "reject_log", "/approvals/"+logID+"/reject", rejectDTO{Comment: comment}, nil)
}
