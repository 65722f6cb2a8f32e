package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/foundit/foundit-api/internal/middleware"
	"github.com/foundit/foundit-api/internal/pkg/identity"
	"github.com/foundit/foundit-api/internal/pkg/jwt"
	"github.com/foundit/foundit-api/internal/pkg/response"
)

func newTestRouter(t *testing.T, svc *Service, jwtService *jwt.Service) http.Handler {
	t.Helper()
	h := NewHandler(svc)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(jwtService))
		r.Patch("/reports/{id}", h.Update)
	})
	return r
}

func bearerFor(t *testing.T, jwtService *jwt.Service, actor identity.Actor) string {
	t.Helper()
	token, err := jwtService.GenerateAccessToken(actor.UserID, actor.Username, string(actor.Role))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestUpdateHandlerRejectsMalformedDate(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	svc := NewService(newFakeRepo(rep), nil)
	jwtService := jwt.NewService("secret", time.Minute, time.Hour)
	router := newTestRouter(t, svc, jwtService)

	req := httptest.NewRequest(http.MethodPatch, "/reports/"+rep.ID.String(), strings.NewReader(`{"date_event":"not-a-date"}`))
	req.Header.Set("Authorization", bearerFor(t, jwtService, owner))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (body %s)", w.Code, w.Body.String())
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %+v", resp.Error)
	}
	if resp.Error.Details["date_event"] == "" {
		t.Fatalf("expected date_event detail, got %v", resp.Error.Details)
	}
}

func TestUpdateHandlerAcceptsWellFormedDate(t *testing.T) {
	owner := userActor()
	rep := activeReport(owner)
	repo := newFakeRepo(rep)
	svc := NewService(repo, nil)
	jwtService := jwt.NewService("secret", time.Minute, time.Hour)
	router := newTestRouter(t, svc, jwtService)

	req := httptest.NewRequest(http.MethodPatch, "/reports/"+rep.ID.String(), strings.NewReader(`{"date_event":"2026-08-30"}`))
	req.Header.Set("Authorization", bearerFor(t, jwtService, owner))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if got := repo.reports[rep.ID].DateEvent.Format(DateLayout); got != "2026-08-30" {
		t.Fatalf("expected stored date 2026-08-30, got %s", got)
	}
}
