package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a daily log. The backend is
// case-insensitive on the wire, so decode through ParseStatus.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// ParseStatus decodes a wire status. Unknown values decode to the empty
// Status, which grants no capabilities.
func ParseStatus(s string) Status {
	switch strings.ToLower(s) {
	case "draft":
		return StatusDraft
	case "submitted", "pending":
		return StatusSubmitted
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	}
	return ""
}

// Terminal reports whether the status carries a supervisor decision.
// A log has an approval record iff its status is terminal.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

// ApprovalRecord is the supervisor's decision on a submitted log.
// Append-only from the client's perspective: a resubmitted and
// re-decided log replaces the visible record, the client never edits one.
type ApprovalRecord struct {
	ID             string
	Decision       Decision
	Comment        string
	ApprovedAt     time.Time
	SupervisorName string
}

// DailyLog is one day's service activity, owned by exactly one corps
// member. Date carries no time component.
type DailyLog struct {
	ID          string
	Date        time.Time
	Description string
	Hours       float64
	Remarks     string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Approval    *ApprovalRecord
}

// PendingLog is the supervisor-scoped projection of a submitted log
// awaiting decision.
type PendingLog struct {
	ID               string
	Date             time.Time
	Description      string
	Hours            float64
	Remarks          string
	CreatedAt        time.Time
	CorpsMemberName  string
	CorpsMemberEmail string
	PPA              string
}

// CreateLogRequest carries the fields a corps member supplies when
// recording a day. Validation tags mirror the rules the backend enforces.
type CreateLogRequest struct {
	Date        time.Time
	Description string `validate:"required,min=10"`
	Hours       float64
	Remarks     string
	IsDraft     bool
}

// UpdateLogRequest edits an existing log. The date is fixed at creation.
type UpdateLogRequest struct {
	Description string `validate:"required,min=10"`
	Hours       float64
	Remarks     string
	IsDraft     bool
}
