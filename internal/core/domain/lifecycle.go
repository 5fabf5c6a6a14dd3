package domain

// Action is something a user can do to a log in its current state.
type Action string

const (
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ActionSet is the set of actions available to one role at one status.
type ActionSet map[Action]bool

func (s ActionSet) Allows(a Action) bool { return s[a] }

// capabilities is the single authoritative table of which role may do
// what at which status. Every surface consults this table instead of
// re-deriving visibility rules.
var capabilities = map[Role]map[Status]ActionSet{
	RoleCorpsMember: {
		StatusDraft:     {ActionEdit: true, ActionDelete: true, ActionSubmit: true},
		StatusSubmitted: {ActionEdit: true, ActionDelete: true},
		StatusRejected:  {ActionEdit: true, ActionDelete: true, ActionSubmit: true},
		// Approved: nothing. Once a log is approved it is immutable.
	},
	RoleSupervisor: {
		StatusSubmitted: {ActionApprove: true, ActionReject: true},
	},
}

// Capabilities returns the actions available to role for a log at
// status. Unknown roles or statuses get an empty set.
func Capabilities(role Role, status Status) ActionSet {
	return capabilities[role][status]
}

// transitions lists the legal status moves a corps member's edits can
// make. Supervisor decisions (Submitted -> Approved/Rejected) travel the
// approval endpoints and are checked through Capabilities instead.
var transitions = map[Status]map[Status]bool{
	StatusDraft:     {StatusDraft: true, StatusSubmitted: true},
	StatusSubmitted: {StatusSubmitted: true, StatusDraft: true, StatusApproved: true, StatusRejected: true},
	StatusRejected:  {StatusDraft: true, StatusSubmitted: true},
}

// CanTransition reports whether a log may move from one status to
// another. Approved is terminal: no transition out, ever.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// Mutable reports whether a log at status may still be edited or
// deleted by its owner.
func Mutable(status Status) bool {
	switch status {
	case StatusDraft, StatusSubmitted, StatusRejected:
		return true
	}
	return false
}
