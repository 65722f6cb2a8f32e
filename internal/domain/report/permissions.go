package report

import (
	"github.com/foundit/foundit-api/internal/pkg/identity"
)

// Action is an intended operation on a report, checked against the
// caller's identity before any store access.
type Action string

const (
	ActionView     Action = "view"
	ActionCreate   Action = "create"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
	ActionFlag     Action = "flag"
	ActionModerate Action = "moderate"
)

// Can decides whether actor may perform action on r. It is pure and
// side effect free; callers resolve existence and freshness themselves.
// The first matching rule wins and anything unmatched is denied,
// including unknown actions.
//
// r may be nil only for ActionCreate, which concerns no existing record.
func Can(actor identity.Actor, r *Report, action Action) bool {
	// Admins may do everything except flag. Flagging is a community
	// signal an admin consumes, not emits.
	if actor.IsAdmin() {
		return action != ActionFlag
	}

	if action == ActionCreate {
		// Any session may submit a report, guests included.
		return true
	}

	if r == nil {
		return false
	}

	switch action {
	case ActionView:
		// Deleted reports are visible only to admins, handled above.
		return r.Status != StatusDeleted
	case ActionEdit, ActionDelete:
		return actor.Owns(r.OwnerID)
	case ActionFlag:
		// Users may flag reports they do not own. Duplicate flags are
		// absorbed by the aggregator, not refused here.
		return actor.IsUser() && !actor.Owns(r.OwnerID)
	case ActionModerate:
		return false
	default:
		return false
	}
}
