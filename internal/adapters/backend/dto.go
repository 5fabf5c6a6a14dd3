package backend

import (
	"time"

	"ppalog/internal/core/domain"
)

// Wire shapes, exactly as the backend sends them. Dates on daily logs
// are date-only strings; timestamps are RFC 3339.

type userDTO struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Profile *profileDTO `json:"profile"`
}

type profileDTO struct {
	PPAID          string `json:"ppaId"`
	PPA            string `json:"ppa"`
	SupervisorID   string `json:"supervisorId"`
	SupervisorName string `json:"supervisorName"`
	StateCode      string `json:"stateCode"`
	CallUpNumber   string `json:"callUpNumber"`
}

func (u *userDTO) toDomain() domain.Identity {
	identity := domain.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  domain.ParseRole(u.Role),
	}
	if u.Profile != nil {
		identity.PPAID = u.Profile.PPAID
		identity.PPAName = u.Profile.PPA
		identity.SupervisorID = u.Profile.SupervisorID
		identity.SupervisorName = u.Profile.SupervisorName
	}
	return identity
}

type authResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type approvalRecordDTO struct {
	ID             string `json:"id"`
	Decision       string `json:"decision"`
	Comment        string `json:"comment"`
	ApprovedAt     string `json:"approvedAt"`
	SupervisorName string `json:"supervisorName"`
}

type dailyLogDTO struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Hours       float64            `json:"hours"`
	Remarks     string             `json:"remarks"`
	Status      string             `json:"status"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
	Approval    *approvalRecordDTO `json:"approvalRecord"`
}

func (d *dailyLogDTO) toDomain() domain.DailyLog {
	log := domain.DailyLog{
		ID:          d.ID,
		Date:        parseDate(d.Date),
		Description: d.Description,
		Hours:       d.Hours,
		Remarks:     d.Remarks,
		Status:      domain.ParseStatus(d.Status),
		CreatedAt:   parseTimestamp(d.CreatedAt),
		UpdatedAt:   parseTimestamp(d.UpdatedAt),
	}
	if d.Approval != nil {
		decision := domain.DecisionApproved
		if domain.ParseStatus(d.Approval.Decision) == domain.StatusRejected {
			decision = domain.DecisionRejected
		}
		log.Approval = &domain.ApprovalRecord{
			ID:             d.Approval.ID,
			Decision:       decision,
			Comment:        d.Approval.Comment,
			ApprovedAt:     parseTimestamp(d.Approval.ApprovedAt),
			SupervisorName: d.Approval.SupervisorName,
		}
	}
	return log
}

type pendingLogDTO struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Description      string  `json:"description"`
	Hours            float64 `json:"hours"`
	Remarks          string  `json:"remarks"`
	CreatedAt        string  `json:"createdAt"`
	CorpsMemberName  string  `json:"corpsMemberName"`
	CorpsMemberEmail string  `json:"corpsMemberEmail"`
	PPA              string  `json:"ppa"`
}

func (p *pendingLogDTO) toDomain() domain.PendingLog {
	return domain.PendingLog{
		ID:               p.ID,
		Date:             parseDate(p.Date),
		Description:      p.Description,
		Hours:            p.Hours,
		Remarks:          p.Remarks,
		CreatedAt:        parseTimestamp(p.CreatedAt),
		CorpsMemberName:  p.CorpsMemberName,
		CorpsMemberEmail: p.CorpsMemberEmail,
		PPA:              p.PPA,
	}
}

type ppaDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	JoinCode          string `json:"joinCode"`
	SupervisorID      string `json:"supervisorId"`
	SupervisorName    string `json:"supervisorName"`
	IsActive          bool   `json:"isActive"`
	CreatedAt         string `json:"createdAt"`
	ExpiresAt         string `json:"expiresAt"`
	CorpsMembersCount int    `json:"corpsMembersCount"`
}

func (p *ppaDTO) toDomain() domain.PPA {
	ppa := domain.PPA{
		ID:                p.ID,
		Name:              p.Name,
		Address:           p.Address,
		Description:       p.Description,
		JoinCode:          p.JoinCode,
		SupervisorID:      p.SupervisorID,
		SupervisorName:    p.SupervisorName,
		IsActive:          p.IsActive,
		CreatedAt:         parseTimestamp(p.CreatedAt),
		CorpsMembersCount: p.CorpsMembersCount,
	}
	if p.ExpiresAt != "" {
		t := parseTimestamp(p.ExpiresAt)
		ppa.ExpiresAt = &t
	}
	return ppa
}

type corpsStatsDTO struct {
	TotalLogsThisMonth int `json:"totalLogsThisMonth"`
	ApprovedLogs       int `json:"approvedLogs"`
	RejectedLogs       int `json:"rejectedLogs"`
	PendingLogs        int `json:"pendingLogs"`
	DraftLogs          int `json:"draftLogs"`
}

type assignedCorpsMemberDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StateCode string `json:"stateCode"`
	PPA       string `json:"ppa"`
}

type supervisorStatsDTO struct {
	AssignedCorpsMembers int                      `json:"assignedCorpsMembers"`
	PendingLogsCount     int                      `json:"pendingLogsCount"`
	Students             []assignedCorpsMemberDTO `json:"students"`
}

type dailyLogSummaryDTO struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Remarks     string  `json:"remarks"`
}

type monthlyReportDTO struct {
	CorpsMemberID    string               `json:"corpsMemberId"`
	CorpsMemberName  string               `json:"corpsMemberName"`
	CorpsMemberEmail string               `json:"corpsMemberEmail"`
	PPA              string               `json:"ppa"`
	SupervisorName   string               `json:"supervisorName"`
	Year             int                  `json:"year"`
	Month            int                  `json:"month"`
	TotalDaysWorked  int                  `json:"totalDaysWorked"`
	TotalHoursWorked float64              `json:"totalHoursWorked"`
	DailyLogs        []dailyLogSummaryDTO `json:"dailyLogs"`
}

func parseDate(s string) time.Time {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}
	return parseTimestamp(s)
}

func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
