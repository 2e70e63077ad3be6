package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"atelier-cli/internal/model"
)

// figureItem is one work in the public gallery: image glyph, title caption,
// category. The work id is the correlation key between the two galleries
// (the data-id of the original markup).
type figureItem struct {
	work         model.Work
	categoryName string
}

func (i figureItem) Title() string {
	title := strings.TrimSpace(i.work.Title)
	if title == "" {
		title = "(untitled)"
	}
	return glyphFigure + " " + title
}

func (i figureItem) Description() string {
	if i.categoryName == "" {
		return styleMuted().Render("uncategorized")
	}
	return styleMuted().Render(i.categoryName)
}

func (i figureItem) FilterValue() string { return strings.TrimSpace(i.work.Title) }

// adminFigureItem is one work in the modal's browse gallery, with the delete
// affordance. busy marks a delete in flight: the row is disabled until its
// request settles.
type adminFigureItem struct {
	work model.Work
	busy bool
}

func (i adminFigureItem) Title() string {
	title := strings.TrimSpace(i.work.Title)
	if title == "" {
		title = "(untitled)"
	}
	return glyphFigure + " " + title
}

func (i adminFigureItem) Description() string {
	if i.busy {
		return styleMuted().Render("deleting…")
	}
	return styleMuted().Render("x: delete")
}

func (i adminFigureItem) FilterValue() string { return strings.TrimSpace(i.work.Title) }

const glyphFigure = "▦"

func newGalleryList(title string) list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// The app renders its own chrome (header, chips, footer).
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// ESC means back/close here, never quit.
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func listWorkIDs(l list.Model) []int64 {
	out := make([]int64, 0, len(l.Items()))
	for _, it := range l.Items() {
		switch v := it.(type) {
		case figureItem:
			out = append(out, v.work.ID)
		case adminFigureItem:
			out = append(out, v.work.ID)
		}
	}
	return out
}

func selectGalleryItemByID(l *list.Model, id int64) {
	for i, it := range l.Items() {
		switch v := it.(type) {
		case figureItem:
			if v.work.ID == id {
				l.Select(i)
				return
			}
		case adminFigureItem:
			if v.work.ID == id {
				l.Select(i)
				return
			}
		}
	}
}
