package domain

import "strings"

type Role string

const (
	RoleCorpsMember Role = "CorpsMember"
	RoleSupervisor  Role = "Supervisor"
)

// ParseRole decodes a role as the backend spells it. The wire value is
// case-insensitive; anything unrecognized comes back as an empty Role.
func ParseRole(s string) Role {
	switch strings.ToLower(s) {
	case "corpsmember", "corps_member":
		return RoleCorpsMember
	case "supervisor":
		return RoleSupervisor
	}
	return ""
}

// Identity is the authenticated user as the client sees it. The PPA and
// supervisor fields are populated for corps members only, and only once
// the member has redeemed a join code.
type Identity struct {
	ID             string
	Name           string
	Email          string
	Role           Role
	PPAID          string
	PPAName        string
	SupervisorID   string
	SupervisorName string
}

// HasPPA reports whether the identity is already bound to a PPA.
func (i *Identity) HasPPA() bool {
	return i.PPAID != ""
}
