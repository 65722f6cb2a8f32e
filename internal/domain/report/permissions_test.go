package report

import (
	"testing"

	"github.com/google/uuid"

	"github.com/foundit/foundit-api/internal/pkg/identity"
)

func ownedBy(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func TestCanPermissionTable(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	adminID := uuid.New()

	guest := identity.Guest()
	owner := identity.Actor{UserID: ownerID, Username: "owner", Role: identity.RoleUser}
	other := identity.Actor{UserID: otherID, Username: "other", Role: identity.RoleUser}
	admin := identity.Actor{UserID: adminID, Username: "admin", Role: identity.RoleAdmin}

	active := &Report{ID: uuid.New(), OwnerID: ownedBy(ownerID), Status: StatusActive}
	claimed := &Report{ID: uuid.New(), OwnerID: ownedBy(ownerID), Status: StatusClaimed}
	deleted := &Report{ID: uuid.New(), OwnerID: ownedBy(ownerID), Status: StatusDeleted}
	orphan := &Report{ID: uuid.New(), Status: StatusActive} // guest submission, no owner

	tests := []struct {
		name   string
		actor  identity.Actor
		report *Report
		action Action
		want   bool
	}{
		{"guest views active", guest, active, ActionView, true},
		{"guest views claimed", guest, claimed, ActionView, true},
		{"guest denied deleted", guest, deleted, ActionView, false},
		{"user views active", other, active, ActionView, true},
		{"user denied deleted", other, deleted, ActionView, false},
		{"owner denied own deleted", owner, deleted, ActionView, false},
		{"admin views deleted", admin, deleted, ActionView, true},

		{"guest creates", guest, nil, ActionCreate, true},
		{"user creates", other, nil, ActionCreate, true},
		{"admin creates", admin, nil, ActionCreate, true},

		{"owner edits own", owner, active, ActionEdit, true},
		{"other denied edit", other, active, ActionEdit, false},
		{"guest denied edit", guest, active, ActionEdit, false},
		{"admin edits any", admin, active, ActionEdit, true},
		{"guest denied edit of orphan", guest, orphan, ActionEdit, false},

		{"owner deletes own", owner, active, ActionDelete, true},
		{"other denied delete", other, active, ActionDelete, false},
		{"admin deletes any", admin, active, ActionDelete, true},

		{"user flags others report", other, active, ActionFlag, true},
		{"owner denied self flag", owner, active, ActionFlag, false},
		{"guest denied flag", guest, active, ActionFlag, false},
		{"admin denied flag", admin, active, ActionFlag, false},
		{"user flags orphan report", other, orphan, ActionFlag, true},

		{"admin moderates", admin, active, ActionModerate, true},
		{"user denied moderate", other, active, ActionModerate, false},
		{"owner denied moderate", owner, active, ActionModerate, false},
		{"guest denied moderate", guest, active, ActionModerate, false},

		{"unknown action denied for user", other, active, Action("publish"), false},
		{"nil report denied for view", other, nil, ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.actor, tt.report, tt.action); got != tt.want {
				t.Fatalf("Can(%s, %s) = %v, want %v", tt.actor.Role, tt.action, got, tt.want)
			}
		})
	}
}

func TestViewRuleMatchesDeletedVisibility(t *testing.T) {
	// view is allowed iff the report is not deleted or the actor is admin
	actors := []identity.Actor{
		identity.Guest(),
		{UserID: uuid.New(), Role: identity.RoleUser},
		{UserID: uuid.New(), Role: identity.RoleAdmin},
	}
	statuses := []Status{StatusActive, StatusClaimed, StatusDeleted}

	for _, actor := range actors {
		for _, status := range statuses {
			r := &Report{ID: uuid.New(), Status: status}
			want := status != StatusDeleted || actor.IsAdmin()
			if got := Can(actor, r, ActionView); got != want {
				t.Fatalf("view %s as %s = %v, want %v", status, actor.Role, got, want)
			}
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusActive, StatusClaimed, true},
		{StatusActive, StatusDeleted, true},
		{StatusClaimed, StatusDeleted, true},
		{StatusClaimed, StatusActive, false},
		{StatusDeleted, StatusActive, false},
		{StatusDeleted, StatusClaimed, false},
		{StatusActive, StatusActive, true},
		{StatusClaimed, StatusClaimed, true},
		{StatusDeleted, StatusDeleted, true},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
