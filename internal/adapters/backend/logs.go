package backend

import (
	"context"
	"net/url"
	"strconv"

	"ppalog/internal/core/domain"
)

type createLogDTO struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Remarks     string  `json:"remarks,omitempty"`
	IsDraft     bool    `json:"isDraft"`
}

type updateLogDTO struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Remarks     string  `json:"remarks,omitempty"`
	IsDraft     bool    `json:"isDraft"`
}

func (c *Client) CreateLog(ctx context.Context, req domain.CreateLogRequest) (*domain.DailyLog, error) {
	body := createLogDTO{
		Date:        formatDate(req.Date),
		Description: req.Description,
		Hours:       req.Hours,
		Remarks:     req.Remarks,
		IsDraft:     req.IsDraft,
	}
	var resp dailyLogDTO
	if err := c.post(ctx, "create_log", "/dailylogs", body, &resp); err != nil {
		return nil, err
	}
	log := resp.toDomain()
	return &log, nil
}

func (c *Client) ListLogs(ctx context.Context, year, month int) ([]domain.DailyLog, error) {
	path := "/dailylogs"
	params := url.Values{}
	if year != 0 {
		params.Set("year", strconv.Itoa(year))
	}
	if month != 0 {
		params.Set("month", strconv.Itoa(month))
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp []dailyLogDTO
	if err := c.get(ctx, "list_logs", path, &resp); err != nil {
		return nil, err
	}
	logs := make([]domain.DailyLog, 0, len(resp))
	for i := range resp {
		logs = append(logs, resp[i].toDomain())
	}
	return logs, nil
}

func (c *Client) UpdateLog(ctx context.Context, id string, req domain.UpdateLogRequest) (*domain.DailyLog, error) {
	body := updateLogDTO{
		Description: req.Description,
		Hours:       req.Hours,
		Remarks:     req.Remarks,
		IsDraft:     req.IsDraft,
	}
	var resp dailyLogDTO
	if err := c.put(ctx, "update_log", "/dailylogs/"+id, body, &resp); err != nil {
		return nil, err
	}
	log := resp.toDomain()
	return &log, nil
}

func (c *Client) DeleteLog(ctx context.Context, id string) error {
	return c.delete(ctx, "delete_log", "/dailylogs/"+id)
}
