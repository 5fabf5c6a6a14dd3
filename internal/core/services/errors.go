package services

import "errors"

var (
	// ErrSuperseded marks a load whose response arrived after a newer
	// load was issued for the same query. The result was discarded.
	ErrSuperseded = errors.New("load superseded by a newer request")

	// ErrBusy means another mutation is still in flight on this store.
	ErrBusy = errors.New("another operation is in progress")

	// ErrDecisionInFlight means an approve or reject for the same log
	// id has been dispatched and has not resolved yet.
	ErrDecisionInFlight = errors.New("a decision for this log is already in progress")

	// ErrNotConfirmed means a destructive action was attempted without
	// the explicit confirmation step.
	ErrNotConfirmed = errors.New("deletion not confirmed")

	// ErrActionNotAllowed means the capability table forbids the action
	// for the log's current status.
	ErrActionNotAllowed = errors.New("action not permitted for this log's status")

	// ErrNotLoggedIn means the operation needs an authenticated identity.
	ErrNotLoggedIn = errors.New("not logged in")
)
