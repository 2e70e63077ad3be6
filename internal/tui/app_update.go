package tui

import (
	"errors"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"

	"atelier-cli/internal/api"
	"atelier-cli/internal/model"
	"atelier-cli/internal/session"
)

func (m galleryModel) Init() tea.Cmd {
	return bootstrapCmd(m.deps.Client, m.deps.Snapshot)
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case bootstrapMsg:
		m.loading = false
		if msg.err != nil {
			// Blank the gallery and show one global error in its place;
			// never leave stale/partial content up.
			m.globalErr = "Could not load the gallery — is the backend running?"
			m.store.Reset(nil)
			m.categories = nil
			m.rebuildGalleries()
			return m, nil
		}
		m.globalErr = ""
		m.stale = msg.stale
		m.fetchedAt = msg.fetchedAt
		m.categories = msg.categories
		m.store.Reset(msg.works)
		m.rebuildGalleries()
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case createDoneMsg:
		return m.handleCreateDone(msg)

	case deleteDoneMsg:
		return m.handleDeleteDone(msg)

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		// While the modal is open it consumes every key: the focus trap.
		if m.modal != stepClosed {
			return m.updateModal(msg)
		}
		if m.screen == screenLogin {
			return m.updateLogin(msg)
		}
		return m.updateGallery(msg)
	}

	// Non-key messages (directory reads etc.) belong to the file picker
	// while it is up.
	if m.modal == stepAdd && m.form.picking {
		var cmd tea.Cmd
		m.form.picker, cmd = m.form.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m galleryModel) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "r":
		m.loading = true
		return m, bootstrapCmd(m.deps.Client, m.deps.Snapshot)

	case "left", "h":
		if m.chipIdx > 0 {
			m.chipIdx--
		}
		return m, nil

	case "right", "l":
		if m.chipIdx < len(m.categories) {
			m.chipIdx++
		}
		return m, nil

	case "enter", " ":
		m.applyFilter(m.chipSlug(m.chipIdx))
		return m, nil

	case "[":
		m.navigateBack()
		return m, nil

	case "]":
		m.navigateForward()
		return m, nil

	case "e":
		// The edit affordance is mounted only for the admin.
		if m.authenticated() {
			m.modal = stepBrowse
			m.rebuildGalleries()
			if len(m.modalList.Items()) > 0 {
				m.modalList.Select(0)
			}
		}
		return m, nil

	case "i":
		if !m.authenticated() {
			m.screen = screenLogin
			m.loginFocus = loginFocusEmail
			m.emailInput.Focus()
			m.passwordInput.Blur()
			m.loginErr = ""
		}
		return m, nil

	case "O":
		// Logout is the hard exit from admin mode: clear the stored token and
		// drop straight back to the anonymous gallery.
		if m.authenticated() {
			_ = session.Clear()
			m.deps.Session = nil
			m.modal = stepClosed
			m.form.reset()
			m.showFlash("Logged out")
			return m, flashCmd(m.flashSeq)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.publicList, cmd = m.publicList.Update(msg)
	return m, cmd
}

func (m galleryModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenGallery
		m.emailInput.Blur()
		m.passwordInput.Blur()
		return m, nil

	case "tab", "down":
		m.setLoginFocus((m.loginFocus + 1) % 3)
		return m, nil

	case "shift+tab", "up":
		m.setLoginFocus((m.loginFocus + 2) % 3)
		return m, nil

	case "enter":
		if m.loginFocus == loginFocusEmail {
			m.setLoginFocus(loginFocusPassword)
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	switch m.loginFocus {
	case loginFocusEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case loginFocusPassword:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *galleryModel) setLoginFocus(f loginFocus) {
	m.loginFocus = f
	m.emailInput.Blur()
	m.passwordInput.Blur()
	switch f {
	case loginFocusEmail:
		m.emailInput.Focus()
	case loginFocusPassword:
		m.passwordInput.Focus()
	}
}

func (m galleryModel) submitLogin() (tea.Model, tea.Cmd) {
	// The submit control is disabled while its own request is in flight.
	if m.loginBusy {
		return m, nil
	}
	email := m.emailInput.Value()
	password := m.passwordInput.Value()
	if email == "" || password == "" {
		m.loginErr = "Email and password are required"
		return m, nil
	}
	m.loginBusy = true
	m.loginErr = ""
	return m, loginCmd(m.deps.Client, email, password)
}

func (m galleryModel) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.loginBusy = false
	if msg.err != nil {
		switch {
		case api.IsInvalidCredentials(msg.err):
			m.loginErr = "Invalid email or password"
		case errors.Is(msg.err, api.ErrNetwork):
			m.loginErr = "Could not reach the backend"
		default:
			m.loginErr = "Login failed — try again"
		}
		return m, nil
	}

	s := session.Session{Token: msg.sess.Token, UserID: msg.sess.UserID}
	_ = session.Save(s)
	m.deps.Session = &s
	m.screen = screenGallery
	m.passwordInput.SetValue("")
	m.emailInput.Blur()
	m.passwordInput.Blur()
	m.showFlash("Logged in")
	return m, flashCmd(m.flashSeq)
}

func (m galleryModel) handleCreateDone(msg createDoneMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		// One form-level error; the modal stays open and populated for retry.
		if errors.Is(msg.err, api.ErrNetwork) {
			m.form.submitErr = "Could not reach the backend — try again"
		} else {
			m.form.submitErr = "Upload failed — try again"
		}
		return m, nil
	}

	// The create response's category shape may not match list responses;
	// normalize before the work enters the store.
	w := model.NormalizeCategory(msg.work, msg.selectedID, msg.selectedName, m.categories)
	m.store.Append(w)
	m.deps.Bus.PublishCreated(w)
	m.modal = stepClosed
	m.form.reset()
	m.rebuildGalleries()
	m.showFlash("Photo added")
	return m, flashCmd(m.flashSeq)
}

func (m galleryModel) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	delete(m.deleteBusy, msg.id)
	// A 404 means someone else deleted the work first; the end state is the
	// one asked for, so it takes the success path like the CLI does.
	if msg.err != nil && api.StatusOf(msg.err) != http.StatusNotFound {
		m.browseErr = "Delete failed — try again"
		m.rebuildGalleries() // re-enables the row
		return m, nil
	}

	// Absent id is benign: the work may have vanished in a refresh race.
	m.store.RemoveByID(msg.id)
	m.deps.Bus.PublishDeleted(msg.id)
	m.browseErr = ""
	m.rebuildGalleries()
	return m, nil
}
