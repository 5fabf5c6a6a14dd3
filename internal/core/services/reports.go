package services

import (
	"context"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// Reports fetches monthly clearance reports for the logged-in user.
// Aggregation and PDF rendering are entirely server-side; the client
// only passes the bytes through.
type Reports struct {
	backend ports.ReportAPI
	session *Session
}

func NewReports(backend ports.ReportAPI, session *Session) *Reports {
	return &Reports{backend: backend, session: session}
}

// Monthly fetches the report for the logged-in user.
func (r *Reports) Monthly(ctx context.Context, year, month int) (*domain.MonthlyReport, error) {
	identity := r.session.Current()
	if identity == nil {
		return nil, ErrNotLoggedIn
	}
	if err := checkPeriod(year, month); err != nil {
		return nil, err
	}
	return r.backend.MonthlyReport(ctx, identity.ID, year, month)
}

// MonthlyPDF fetches the rendered PDF for the logged-in user.
func (r *Reports) MonthlyPDF(ctx context.Context, year, month int) ([]byte, error) {
	identity := r.session.Current()
	if identity == nil {
		return nil, ErrNotLoggedIn
	}
	if err := checkPeriod(year, month); err != nil {
		return nil, err
	}
	return r.backend.MonthlyReportPDF(ctx, identity.ID, year, month)
}

func checkPeriod(year, month int) error {
	if year < 2000 || year > 2100 {
		return domain.NewValidationError("Year", "must be a four digit year")
	}
	if month < 1 || month > 12 {
		return domain.NewValidationError("Month", "must be between 1 and 12")
	}
	return nil
}
