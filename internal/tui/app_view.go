package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"atelier-cli/internal/model"
)

func (m galleryModel) View() string {
	if m.width == 0 {
		return "Loading…"
	}
	if m.showHelp {
		return placeCentered(m.width, m.height, renderHelp(modalBodyWidth(m.width)))
	}
	if m.modal != stepClosed {
		return placeCentered(m.width, m.height, m.viewModal())
	}

	var sections []string
	sections = append(sections, m.viewHeader())

	switch {
	case m.screen == screenLogin:
		sections = append(sections, m.viewLogin())
	case m.loading:
		sections = append(sections, styleMuted().Render("Loading the gallery…"))
	case m.globalErr != "":
		sections = append(sections, styleError().Render(m.globalErr))
	default:
		sections = append(sections, m.viewChips(), m.publicList.View())
	}

	sections = append(sections, m.viewFooter())
	return strings.Join(sections, "\n\n")
}

func (m galleryModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("Atelier — portfolio")
	loc := styleMuted().Render(m.history.Current().String())

	parts := []string{title, loc}
	if m.authenticated() {
		banner := lipgloss.NewStyle().
			Background(colorBannerBg).
			Foreground(colorBannerFg).
			Padding(0, 1).
			Render("édition  e: edit gallery  O: logout")
		parts = append(parts, banner)
	}
	if m.stale {
		note := "offline — showing the last fetched gallery"
		if !m.fetchedAt.IsZero() {
			note = fmt.Sprintf("offline — snapshot from %s", m.fetchedAt.Format("2006-01-02 15:04"))
		}
		parts = append(parts, styleError().Render(note))
	}
	if m.flash != "" {
		parts = append(parts, styleMuted().Render(m.flash))
	}
	return strings.Join(parts, "  ")
}

// viewChips renders the filter bar. Exactly one chip is active (the applied
// filter, aria-pressed in the original markup); the cursor may rest on
// another chip before it is pressed.
func (m galleryModel) viewChips() string {
	active := m.activeSlug()

	chip := func(label, slug string, idx int) string {
		st := lipgloss.NewStyle().Padding(0, 1).Foreground(colorChipFg).Background(colorChipBg)
		if slug == active {
			st = st.Foreground(colorChipActiveFg).Background(colorChipActiveBg).Bold(true)
		} else if idx == m.chipIdx {
			st = st.Background(colorChipFocusedBg)
		}
		return st.Render(label)
	}

	parts := []string{chip("All", "", 0)}
	for i, c := range m.categories {
		parts = append(parts, chip(c.Name, model.Slugify(c.Name), i+1))
	}
	return strings.Join(parts, " ")
}

func (m galleryModel) viewFooter() string {
	var hints []string
	switch {
	case m.screen == screenLogin:
		hints = []string{"tab: next field", "enter: log in", "esc: back"}
	default:
		hints = []string{"←/→: pick filter", "enter: apply", "[ ]: back/forward", "r: reload"}
		if m.authenticated() {
			hints = append(hints, "e: edit")
		} else {
			hints = append(hints, "i: log in")
		}
		hints = append(hints, "?: help", "q: quit")
	}
	return styleMuted().Render(strings.Join(hints, "  "))
}

func (m galleryModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")

	submit := lipgloss.NewStyle().Padding(0, 1).Foreground(colorChipFg).Background(colorChipBg)
	if m.loginFocus == loginFocusSubmit {
		submit = submit.Foreground(colorChipActiveFg).Background(colorChipActiveBg).Bold(true)
	}
	label := "Log in"
	if m.loginBusy {
		label = "Logging in…"
	}
	b.WriteString(submit.Render(label))

	if m.loginErr != "" {
		b.WriteString("\n\n")
		b.WriteString(styleError().Render(m.loginErr))
	}
	return b.String()
}

func (m galleryModel) viewModal() string {
	switch m.modal {
	case stepBrowse:
		return m.viewModalBrowse()
	case stepAdd:
		return m.viewModalAdd()
	}
	return ""
}

func (m galleryModel) viewModalBrowse() string {
	var b strings.Builder
	// Pin the list pane to the modal body width so rows with wide glyphs
	// cannot push the border around.
	b.WriteString(normalizePane(m.modalList.View(), modalBodyWidth(m.width)-2, 0))
	if m.browseErr != "" {
		b.WriteString("\n")
		b.WriteString(styleError().Render(m.browseErr))
	}
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("a: add a photo   x: delete   esc: close"))
	return renderModalBox(m.width, "Photo gallery", b.String())
}

func (m galleryModel) viewModalAdd() string {
	if m.form.picking {
		content := m.form.picker.View() + "\n" + styleMuted().Render("enter: select   esc: cancel")
		return renderModalBox(m.width, "Add photo — pick an image", content)
	}

	field := func(focused bool, label, value string) string {
		marker := "  "
		if focused {
			marker = "> "
		}
		return marker + lipgloss.NewStyle().Bold(focused).Render(label) + " " + value
	}

	var b strings.Builder

	imageValue := styleMuted().Render("(none — enter to pick)")
	if m.form.imagePath != "" {
		imageValue = fmt.Sprintf("%s (%d KiB)", m.form.imagePath, m.form.imageSize/1024)
	}
	b.WriteString(field(m.form.focus == focusImage, "Image:", imageValue))
	if m.form.touchedImage && m.form.imageErr != "" {
		b.WriteString("\n    " + styleError().Render(m.form.imageErr))
	}
	b.WriteString("\n")

	b.WriteString(field(m.form.focus == focusTitle, "Title:", m.form.titleInput.View()))
	if m.form.touchedTitle && m.form.titleErr != "" {
		b.WriteString("\n    " + styleError().Render(m.form.titleErr))
	}
	b.WriteString("\n")

	catValue := styleMuted().Render("(none — ←/→ to pick)")
	if m.form.categoryIdx >= 0 && m.form.categoryIdx < len(m.categories) {
		catValue = m.categories[m.form.categoryIdx].Name
	}
	b.WriteString(field(m.form.focus == focusCategory, "Category:", catValue))
	if m.form.touchedCategory && m.form.categoryErr != "" {
		b.WriteString("\n    " + styleError().Render(m.form.categoryErr))
	}
	b.WriteString("\n\n")

	submit := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case !m.form.valid():
		submit = submit.Foreground(colorMuted).Background(colorChipBg)
	case m.form.focus == focusSubmit:
		submit = submit.Foreground(colorChipActiveFg).Background(colorChipActiveBg).Bold(true)
	default:
		submit = submit.Foreground(colorChipFg).Background(colorChipBg)
	}
	label := "Submit"
	if m.form.submitting {
		label = "Uploading…"
	}
	b.WriteString(submit.Render(label))

	if m.form.submitErr != "" {
		b.WriteString("\n\n" + styleError().Render(m.form.submitErr))
	}
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("tab: next field   ctrl+b: back to gallery   esc: close"))

	return renderModalBox(m.width, "Add photo", b.String())
}
