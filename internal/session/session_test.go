package session

import (
	"testing"
)

func TestSaveLoadClear(t *testing.T) {
	t.Setenv("ATELIER_CONFIG_DIR", t.TempDir())

	// Empty dir: anonymous.
	s, err := Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session, got %#v", s)
	}

	if err := Save(Session{Token: "tok-123", UserID: 7}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.IsAuthenticated() || s.Token != "tok-123" || s.UserID != 7 {
		t.Fatalf("unexpected session %#v", s)
	}

	if err := Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s, _ = Load(); s.IsAuthenticated() {
		t.Fatalf("expected anonymous after clear")
	}

	// Logout of an already-anonymous session is a no-op.
	if err := Clear(); err != nil {
		t.Fatalf("double clear: %v", err)
	}
}

func TestLoad_BlankTokenIsAnonymous(t *testing.T) {
	t.Setenv("ATELIER_CONFIG_DIR", t.TempDir())

	if err := Save(Session{Token: "   "}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatalf("blank token must not authenticate")
	}
}
