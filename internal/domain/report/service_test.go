package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/foundit/foundit-api/internal/pkg/identity"
)

type fakeRepo struct {
	reports map[uuid.UUID]*Report
}

func newFakeRepo(reports ...*Report) *fakeRepo {
	m := make(map[uuid.UUID]*Report)
	for _, r := range reports {
		m[r.ID] = r
	}
	return &fakeRepo{reports: m}
}

func (f *fakeRepo) Create(ctx context.Context, r *Report) error {
	f.reports[r.ID] = r
	return nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	if r, ok := f.reports[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, r *Report) error {
	existing, ok := f.reports[r.ID]
	if !ok || existing.Status == StatusDeleted {
		return ErrReportDeleted
	}
	copied := *r
	f.reports[r.ID] = &copied
	return nil
}
func (f *fakeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if r, ok := f.reports[id]; ok && r.Status != StatusDeleted {
		r.Status = StatusDeleted
	}
	return nil
}
func (f *fakeRepo) ListAll(ctx context.Context) ([]Report, error) {
	out := make([]Report, 0, len(f.reports))
	for _, r := range f.reports {
		out = append(out, *r)
	}
	return out, nil
}
func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Report, error) {
	out := []Report{}
	for _, r := range f.reports {
		if r.OwnerID.Valid && r.OwnerID.UUID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func userActor() identity.Actor {
	return identity.Actor{UserID: uuid.New(), Username: "user", Role: identity.RoleUser}
}

func adminActor() identity.Actor {
	return identity.Actor{UserID: uuid.New(), Username: "admin", Role: identity.RoleAdmin}
}

func activeReport(owner identity.Actor) *Report {
	return &Report{
		ID:        uuid.New(),
		OwnerID:   owner.NullOwner(),
		Type:      TypeLost,
		Title:     "Lost wallet",
		Location:  "Park",
		DateEvent: time.Now(),
		Status:    StatusActive,
	}
}

func TestCreateAsGuestHasNoOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	rep, err := svc.Create(context.Background(), identity.Guest(), &CreateRequest{
		Type:      "found",
		Title:     "Found keys",
		Location:  "Bus stop",
		DateEvent: "2026-08-30",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rep.OwnerID.Valid {
		t.Fatal("expected guest report to have null owner")
	}
	if rep.Status != StatusActive {
		t.Fatalf("expected active status, got %s", rep.Status)
	}
}

func TestCreateAsUserSetsOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	actor := userActor()

	rep, err := svc.Create(context.Background(), actor, &CreateRequest{
		Type:      "lost",
		Title:     "Lost phone",
		Location:  "Mall",
		DateEvent: "2026-08-30",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !rep.OwnerID.Valid || rep.OwnerID.UUID != actor.UserID {
		t.Fatal("expected owner to be the creating user")
	}
}

func TestGetDeniesDeletedForNonAdmin(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	rep.Status = StatusDeleted
	svc := NewService(newFakeRepo(rep), nil)

	if _, err := svc.Get(context.Background(), owner, rep.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for owner, got %v", err)
	}

	got, err := svc.Get(context.Background(), adminActor(), rep.ID)
	if err != nil {
		t.Fatalf("expected admin to view deleted report, got %v", err)
	}
	if got.ID != rep.ID {
		t.Fatal("expected the deleted report")
	}
}

func TestUpdateByNonOwnerForbiddenAndAdminSucceeds(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	svc := NewService(newFakeRepo(rep), nil)

	title := "Chipped wallet"
	if _, err := svc.Update(context.Background(), userActor(), rep.ID, &UpdateRequest{Title: &title}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.Update(context.Background(), adminActor(), rep.ID, &UpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("expected admin edit to succeed, got %v", err)
	}
	if got.Title != title {
		t.Fatalf("expected updated title, got %s", got.Title)
	}
}

func TestUpdateDeletedReportConflictsEvenForAdmin(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	rep.Status = StatusDeleted
	svc := NewService(newFakeRepo(rep), nil)

	title := "x"
	if _, err := svc.Update(context.Background(), adminActor(), rep.ID, &UpdateRequest{Title: &title}); !errors.Is(err, ErrReportDeleted) {
		t.Fatalf("expected ErrReportDeleted, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	svc := NewService(newFakeRepo(rep), nil)

	claimed := string(StatusClaimed)
	got, err := svc.Update(context.Background(), owner, rep.ID, &UpdateRequest{Status: &claimed})
	if err != nil {
		t.Fatalf("expected active to claimed to succeed, got %v", err)
	}
	if got.Status != StatusClaimed {
		t.Fatalf("expected claimed, got %s", got.Status)
	}

	active := string(StatusActive)
	if _, err := svc.Update(context.Background(), owner, rep.ID, &UpdateRequest{Status: &active}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	repo := newFakeRepo(rep)
	svc := NewService(repo, nil)

	if err := svc.Delete(context.Background(), owner, rep.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if repo.reports[rep.ID].Status != StatusDeleted {
		t.Fatal("expected soft deleted report")
	}

	// retry after unknown outcome must not fail; admins still own the rule
	if err := svc.Delete(context.Background(), adminActor(), rep.ID); err != nil {
		t.Fatalf("expected repeat delete to be a no-op, got %v", err)
	}
}

func TestDeleteByNonOwnerForbidden(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	svc := NewService(newFakeRepo(rep), nil)

	if err := svc.Delete(context.Background(), userActor(), rep.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListExcludesDeletedFromCounts(t *testing.T) {
	owner := userActor()
	a := activeReport(owner)
	b := activeReport(owner)
	b.Status = StatusDeleted
	svc := NewService(newFakeRepo(a, b), nil)

	result, err := svc.List(context.Background(), identity.Guest(), Filter{}, 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected 1 visible report, got %d", result.Total)
	}
	if result.TotalPages != 1 {
		t.Fatalf("expected 1 page, got %d", result.TotalPages)
	}
}

type fakePhotoStore struct {
	removed []string
	err     error
}

func (f *fakePhotoStore) Remove(ctx context.Context, url string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, url)
	return nil
}

func TestUpdateReplacingPhotoRemovesOldBlob(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	rep.PhotoURL = "https://cdn.example.com/reports/old.jpg"
	photos := &fakePhotoStore{}
	svc := NewService(newFakeRepo(rep), photos)

	newURL := "https://cdn.example.com/reports/new.jpg"
	if _, err := svc.Update(context.Background(), owner, rep.ID, &UpdateRequest{PhotoURL: &newURL}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(photos.removed) != 1 || photos.removed[0] != "https://cdn.example.com/reports/old.jpg" {
		t.Fatalf("expected old photo removed, got %v", photos.removed)
	}

	// editing other fields must not touch the blob store
	title := "New title"
	if _, err := svc.Update(context.Background(), owner, rep.ID, &UpdateRequest{Title: &title}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(photos.removed) != 1 {
		t.Fatalf("expected no further removals, got %v", photos.removed)
	}
}

func TestUpdateSucceedsWhenPhotoCleanupFails(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	rep.PhotoURL = "https://cdn.example.com/reports/old.jpg"
	photos := &fakePhotoStore{err: errors.New("bucket unreachable")}
	svc := NewService(newFakeRepo(rep), photos)

	newURL := "https://cdn.example.com/reports/new.jpg"
	got, err := svc.Update(context.Background(), owner, rep.ID, &UpdateRequest{PhotoURL: &newURL})
	if err != nil {
		t.Fatalf("expected cleanup failure to be non-fatal, got %v", err)
	}
	if got.PhotoURL != newURL {
		t.Fatalf("expected updated photo URL, got %s", got.PhotoURL)
	}
}

func TestMineRequiresSession(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	if _, err := svc.Mine(context.Background(), identity.Guest()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMineExcludesOwnDeleted(t *testing.T) {
	owner := userActor()
	a := activeReport(owner)
	b := activeReport(owner)
	b.Status = StatusDeleted
	svc := NewService(newFakeRepo(a, b), nil)

	got, err := svc.Mine(context.Background(), owner)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 report, got %d", len(got))
	}
}
