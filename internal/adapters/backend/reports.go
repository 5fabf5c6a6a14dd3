package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ppalog/internal/core/domain"
)

func reportQuery(userID string, year, month int) string {
	params := url.Values{}
	params.Set("userId", userID)
	params.Set("year", strconv.Itoa(year))
	params.Set("month", strconv.Itoa(month))
	return params.Encode()
}

func (c *Client) MonthlyReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error) {
	var resp monthlyReportDTO
	path := "/reports/monthly?" + reportQuery(userID, year, month)
	if err := c.get(ctx, "monthly_report", path, &resp); err != nil {
		return nil, err
	}

	report := &domain.MonthlyReport{
		CorpsMemberID:    resp.CorpsMemberID,
		CorpsMemberName:  resp.CorpsMemberName,
		CorpsMemberEmail: resp.CorpsMemberEmail,
		PPA:              resp.PPA,
		SupervisorName:   resp.SupervisorName,
		Year:             resp.Year,
		Month:            resp.Month,
		TotalDaysWorked:  resp.TotalDaysWorked,
		TotalHoursWorked: resp.TotalHoursWorked,
	}
	for _, l := range resp.DailyLogs {
		report.DailyLogs = append(report.DailyLogs, domain.DailyLogSummary{
			Date:        parseDate(l.Date),
			Description: l.Description,
			Hours:       l.Hours,
			Remarks:     l.Remarks,
		})
	}
	return report, nil
}

// MonthlyReportPDF passes the rendered PDF bytes through untouched.
func (c *Client) MonthlyReportPDF(ctx context.Context, userID string, year, month int) ([]byte, error) {
	path := "/reports/monthly/pdf?" + reportQuery(userID, year, month)
	return c.do(ctx, "monthly_report_pdf", http.MethodGet, path, nil)
}
