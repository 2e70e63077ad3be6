package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m galleryModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case stepBrowse:
		return m.updateModalBrowse(msg)
	case stepAdd:
		return m.updateModalAdd(msg)
	}
	return m, nil
}

func (m galleryModel) updateModalBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Closing from Browse keeps the add form as it was; only leaving Add
		// resets it.
		m.modal = stepClosed
		return m, nil

	case "a":
		m.modal = stepAdd
		m.form.focus = focusImage
		return m, nil

	case "x", "d", "delete", "backspace":
		return m.deleteSelected()
	}

	var cmd tea.Cmd
	m.modalList, cmd = m.modalList.Update(msg)
	return m, cmd
}

func (m galleryModel) deleteSelected() (tea.Model, tea.Cmd) {
	it, ok := m.modalList.SelectedItem().(adminFigureItem)
	if !ok {
		return m, nil
	}
	// Disabled while its own request is in flight; duplicate activations are
	// dropped.
	if m.deleteBusy[it.work.ID] {
		return m, nil
	}
	m.deleteBusy[it.work.ID] = true
	m.rebuildGalleries()
	selectGalleryItemByID(&m.modalList, it.work.ID)
	return m, deleteWorkCmd(m.deps.Client, m.token(), it.work.ID)
}

func (m galleryModel) updateModalAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.picking {
		return m.updateFilePicker(msg)
	}

	switch msg.String() {
	case "esc":
		// Escape closes the whole modal; from Add that resets the form so
		// reopening starts fresh.
		m.modal = stepClosed
		m.form.reset()
		return m, nil

	case "ctrl+b":
		// Back to the browse step, keeping the form populated.
		m.modal = stepBrowse
		return m, nil

	case "tab":
		m.cycleAddFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleAddFocus(-1)
		return m, nil

	case "enter":
		switch m.form.focus {
		case focusImage:
			// (Re)open the picker; activating the preview again re-picks.
			m.form.picking = true
			return m, m.form.picker.Init()
		case focusTitle:
			m.cycleAddFocus(1)
			return m, nil
		case focusCategory:
			m.cycleAddFocus(1)
			return m, nil
		case focusSubmit:
			return m.submitCreate()
		}
	}

	switch m.form.focus {
	case focusCategory:
		switch msg.String() {
		case "left", "up":
			m.moveCategorySelection(-1)
			return m, nil
		case "right", "down", " ":
			m.moveCategorySelection(1)
			return m, nil
		}
	case focusTitle:
		var cmd tea.Cmd
		m.form.titleInput, cmd = m.form.titleInput.Update(msg)
		m.form.sanitizeTitle()
		return m, cmd
	}
	return m, nil
}

// cycleAddFocus moves focus within the Add step, wrapping at both ends so the
// cycle never escapes the modal. Leaving a field marks it touched, which is
// when its inline error may first appear.
func (m *galleryModel) cycleAddFocus(delta int) {
	switch m.form.focus {
	case focusTitle:
		m.form.touchedTitle = true
		m.form.revalidateTitle()
	case focusCategory:
		m.form.touchedCategory = true
		m.form.revalidateCategory()
	}

	n := 4
	m.form.focus = addFocus((int(m.form.focus) + delta + n) % n)

	if m.form.focus == focusTitle {
		m.form.titleInput.Focus()
	} else {
		m.form.titleInput.Blur()
	}
}

func (m *galleryModel) moveCategorySelection(delta int) {
	if len(m.categories) == 0 {
		return
	}
	m.form.touchedCategory = true
	idx := m.form.categoryIdx + delta
	if idx < 0 {
		idx = len(m.categories) - 1
	}
	if idx >= len(m.categories) {
		idx = 0
	}
	m.form.categoryIdx = idx
	m.form.revalidateCategory()
}

func (m galleryModel) updateFilePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.form.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.form.picker, cmd = m.form.picker.Update(msg)

	if ok, path := m.form.picker.DidSelectFile(msg); ok {
		m.form.setImage(path)
		m.form.picking = false
		return m, nil
	}
	if ok, _ := m.form.picker.DidSelectDisabledFile(msg); ok {
		m.form.imageErr = "Only jpg and png images are accepted"
		m.form.touchedImage = true
	}
	return m, cmd
}

func (m galleryModel) submitCreate() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	// Preconditions gate the network call: an invalid form surfaces its field
	// errors and never reaches the wire.
	if !m.form.valid() {
		m.form.touchedImage = true
		m.form.touchedTitle = true
		m.form.touchedCategory = true
		if !m.form.imageValid() && m.form.imageErr == "" {
			m.form.imageErr = "Pick an image first"
		}
		m.form.revalidateTitle()
		m.form.revalidateCategory()
		return m, nil
	}

	cat := m.categories[m.form.categoryIdx]
	m.form.submitting = true
	m.form.submitErr = ""
	// Sanitization keeps a trailing space while typing; it never ships.
	title := strings.TrimSpace(m.form.titleInput.Value())
	return m, createWorkCmd(m.deps.Client, m.token(), m.form.imagePath, title, cat)
}
