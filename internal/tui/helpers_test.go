package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"atelier-cli/internal/api"
	"atelier-cli/internal/bus"
	"atelier-cli/internal/config"
	"atelier-cli/internal/model"
	"atelier-cli/internal/nav"
	"atelier-cli/internal/session"
)

var errTest = errors.New("test failure")

func fixtureCats() []model.Category {
	return []model.Category{
		{ID: 10, Name: "Objets"},
		{ID: 11, Name: "Appartements"},
		{ID: 12, Name: "Hôtels & Restaurants"},
	}
}

func fixtureWorks() []model.Work {
	return []model.Work{
		{ID: 1, Title: "Chair", ImageURL: "/img/1.png", Category: &model.Category{ID: 10, Name: "Objets"}},
		{ID: 2, Title: "Table", ImageURL: "/img/2.png", Category: &model.Category{ID: 11, Name: "Appartements"}},
	}
}

// newTestModel builds a bootstrapped model against a backend that is never
// reached: network commands are asserted on, not executed.
func newTestModel(t *testing.T, authed bool, initial nav.Location) galleryModel {
	t.Helper()

	deps := Deps{
		Config: &config.Config{APIURL: "http://127.0.0.1:1"},
		Client: api.New("http://127.0.0.1:1"),
		Bus:    bus.New(nil),
	}
	if authed {
		deps.Session = &session.Session{Token: "tok-test", UserID: 1}
	}

	m := newGalleryModel(deps, initial)
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = apply(t, m, bootstrapMsg{works: fixtureWorks(), categories: fixtureCats()})
	return m
}

func apply(t *testing.T, m galleryModel, msg tea.Msg) galleryModel {
	t.Helper()
	mm, _ := m.Update(msg)
	out, ok := mm.(galleryModel)
	if !ok {
		t.Fatalf("Update returned %T, want galleryModel", mm)
	}
	return out
}

func applyCmd(t *testing.T, m galleryModel, msg tea.Msg) (galleryModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	out, ok := mm.(galleryModel)
	if !ok {
		t.Fatalf("Update returned %T, want galleryModel", mm)
	}
	return out, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func containsID(ids []int64, want int64) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
