package domain

import "time"

// DailyLogSummary is one row of a monthly clearance report.
type DailyLogSummary struct {
	Date        time.Time
	Description string
	Hours       float64
	Remarks     string
}

// MonthlyReport is the backend-aggregated clearance report for one
// corps member and month. All totals are server-computed.
type MonthlyReport struct {
	CorpsMemberID    string
	CorpsMemberName  string
	CorpsMemberEmail string
	PPA              string
	SupervisorName   string
	Year             int
	Month            int
	TotalDaysWorked  int
	TotalHoursWorked float64
	DailyLogs        []DailyLogSummary
}

// CorpsMemberStats is the corps member dashboard summary.
type CorpsMemberStats struct {
	TotalLogsThisMonth int
	ApprovedLogs       int
	RejectedLogs       int
	PendingLogs        int
	DraftLogs          int
}

// AssignedCorpsMember is one corps member bound to a supervisor's PPA.
type AssignedCorpsMember struct {
	ID        string
	Name      string
	Email     string
	StateCode string
	PPA       string
}

// SupervisorStats is the supervisor dashboard summary.
type SupervisorStats struct {
	AssignedCorpsMembers int
	PendingLogsCount     int
	CorpsMembers         []AssignedCorpsMember
}
