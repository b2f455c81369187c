// ABOUTME: Tests for session middleware
// ABOUTME: Verifies session reuse, replacement, cookie and header propagation

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeStore struct {
	live    map[string]bool
	next    string
	failErr error
}

func (f *fakeStore) Ensure(id string) (string, bool, error) {
	if f.failErr != nil {
		return "", false, f.failErr
	}
	if f.live[id] {
		return id, false, nil
	}
	f.live[f.next] = true
	return f.next, true, nil
}

func sessionHandler(store SessionStore, validate func(string) error) (http.HandlerFunc, *string) {
	var seen string
	h := Session(store, validate, SessionOptions{TTL: time.Hour})(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionID(r)
		w.WriteHeader(http.StatusOK)
	})
	return h, &seen
}

func TestSession_CreatesWhenMissing(t *testing.T) {
	store := &fakeStore{live: map[string]bool{}, next: "new-session"}
	handler, seen := sessionHandler(store, nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil))

	if *seen != "new-session" {
		t.Errorf("SessionID = %q, want %q", *seen, "new-session")
	}
	if got := rec.Header().Get(SessionHeader); got != "new-session" {
		t.Errorf("%s = %q, want %q", SessionHeader, got, "new-session")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || cookies[0].Value != "new-session" {
		t.Fatalf("Unexpected cookies %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("Session cookie should be HttpOnly")
	}
	if cookies[0].MaxAge != 3600 {
		t.Errorf("Cookie MaxAge = %d, want 3600", cookies[0].MaxAge)
	}
}

func TestSession_ReusesLiveSession(t *testing.T) {
	store := &fakeStore{live: map[string]bool{"existing": true}, next: "other"}
	handler, seen := sessionHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "existing"})
	handler(httptest.NewRecorder(), req)

	if *seen != "existing" {
		t.Errorf("SessionID = %q, want %q", *seen, "existing")
	}
}

func TestSession_HeaderOverridesCookie(t *testing.T) {
	store := &fakeStore{live: map[string]bool{"cookie-id": true, "header-id": true}}
	handler, seen := sessionHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-id"})
	req.Header.Set(SessionHeader, "header-id")
	handler(httptest.NewRecorder(), req)

	if *seen != "header-id" {
		t.Errorf("SessionID = %q, want %q", *seen, "header-id")
	}
}

func TestSession_MalformedIDReplaced(t *testing.T) {
	store := &fakeStore{live: map[string]bool{"../../etc": true}, next: "fresh"}
	validate := func(id string) error {
		if id == "../../etc" {
			return errors.New("bad format")
		}
		return nil
	}
	handler, seen := sessionHandler(store, validate)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	req.Header.Set(SessionHeader, "../../etc")
	handler(httptest.NewRecorder(), req)

	if *seen != "fresh" {
		t.Errorf("SessionID = %q, want %q", *seen, "fresh")
	}
}

func TestSession_StoreFailure(t *testing.T) {
	store := &fakeStore{failErr: errors.New("entropy exhausted")}
	handler, seen := sessionHandler(store, nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if *seen != "" {
		t.Error("Handler should not run without a session")
	}
}
