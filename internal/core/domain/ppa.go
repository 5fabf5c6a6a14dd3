package domain

import (
	"regexp"
	"strings"
	"time"
)

// PPA is a Place of Primary Assignment, created and owned by a
// supervisor. The join code is issued by the backend at creation and is
// immutable for the PPA's lifetime.
type PPA struct {
	ID                string
	Name              string
	Address           string
	Description       string
	JoinCode          string
	SupervisorID      string
	SupervisorName    string
	IsActive          bool
	CreatedAt         time.Time
	ExpiresAt         *time.Time
	CorpsMembersCount int
}

// CreatePPARequest carries the supervisor-supplied fields for a new PPA.
type CreatePPARequest struct {
	Name        string `validate:"required"`
	Address     string `validate:"required"`
	Description string
}

// joinCodePattern matches a complete join code: the literal PPA- prefix
// followed by exactly six alphanumerics.
var joinCodePattern = regexp.MustCompile(`^PPA-[A-Z0-9]{6}$`)

// joinCodeLength is the full length of a normalized code, "PPA-" plus
// six characters.
const joinCodeLength = 10

// NormalizeJoinCode uppercases raw input and truncates it to the code
// length, matching what the entry field does on every keystroke.
func NormalizeJoinCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) > joinCodeLength {
		code = code[:joinCodeLength]
	}
	return code
}

// ValidJoinCodeFormat reports whether a normalized code is syntactically
// complete. Format validity says nothing about liveness; the backend
// decides that.
func ValidJoinCodeFormat(code string) bool {
	return joinCodePattern.MatchString(code)
}
