package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"atelier-cli/internal/api"
	"atelier-cli/internal/bus"
	"atelier-cli/internal/cache"
	"atelier-cli/internal/config"
	"atelier-cli/internal/model"
	"atelier-cli/internal/nav"
	"atelier-cli/internal/session"
)

// Deps is everything the TUI needs from the outside, built once at bootstrap
// and injected (no package reaches into ambient storage on its own).
type Deps struct {
	Config  *config.Config
	Client  *api.Client
	Session *session.Session
	Bus     *bus.Bus
	// Snapshot may be nil when the cache directory is unusable.
	Snapshot *cache.Cache
}

type galleryModel struct {
	deps Deps

	width  int
	height int

	// The single source of truth plus its two renderings: the public gallery
	// (restricted by the active filter) and the modal's browse gallery
	// (always the full store, with delete affordances). Every store mutation
	// is followed by rebuildGalleries within the same update step.
	store      *model.Store
	categories []model.Category
	publicList list.Model
	modalList  list.Model

	// history is the in-app stand-in for the browser URL: the active filter
	// is always derived from history.Current().
	history *nav.History
	// chipIdx is the keyboard cursor over the filter chips (0 = all,
	// 1..n = categories). Distinct from the applied filter.
	chipIdx int

	screen screen
	modal  modalStep
	form   addForm

	loading   bool
	stale     bool
	fetchedAt time.Time
	// globalErr replaces the whole gallery area when the bootstrap fetch
	// failed and no snapshot could stand in.
	globalErr string

	// browseErr is the inline error of the modal's browse step (failed
	// delete); cleared when a later delete succeeds.
	browseErr string
	// deleteBusy marks works whose delete request is in flight. Their rows
	// are disabled until the request settles; a hung request leaves the row
	// disabled for good, which is accepted.
	deleteBusy map[int64]bool

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    loginFocus
	loginErr      string
	loginBusy     bool

	showHelp bool

	flash    string
	flashSeq int
}

func newGalleryModel(deps Deps, initial nav.Location) galleryModel {
	m := galleryModel{
		deps:       deps,
		store:      model.NewStore(nil),
		history:    nav.NewHistory(initial),
		publicList: newGalleryList("Gallery"),
		modalList:  newGalleryList("Photo gallery"),
		form:       newAddForm(),
		deleteBusy: map[int64]bool{},
		loading:    true,
	}

	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "Email"
	m.emailInput.Width = 40
	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "Password"
	m.passwordInput.Width = 40
	m.passwordInput.EchoMode = textinput.EchoPassword

	return m
}

func (m galleryModel) authenticated() bool {
	return m.deps.Session.IsAuthenticated()
}

func (m galleryModel) token() string {
	if m.deps.Session == nil {
		return ""
	}
	return m.deps.Session.Token
}

// activeSlug is the filter derived from the current location. An unknown slug
// fails open to "all", so exactly one chip is active at any time.
func (m galleryModel) activeSlug() string {
	slug := m.history.Current().CategorySlug
	if slug == "" || !nav.KnownSlug(m.categories, slug) {
		return ""
	}
	return slug
}

// rebuildGalleries repaints both renderings from the store. It is the one
// synchronization point: after any create or delete both galleries show the
// same work set, the public one additionally restricted by the active filter.
func (m *galleryModel) rebuildGalleries() {
	works := m.store.Works()

	visible := nav.DeriveVisible(works, m.categories, m.history.Current().CategorySlug)
	pub := make([]list.Item, 0, len(visible))
	for _, w := range visible {
		pub = append(pub, figureItem{work: w, categoryName: model.ResolvedCategoryName(w, m.categories)})
	}
	m.publicList.SetItems(pub)

	adm := make([]list.Item, 0, len(works))
	for _, w := range works {
		adm = append(adm, adminFigureItem{work: w, busy: m.deleteBusy[w.ID]})
	}
	m.modalList.SetItems(adm)

	m.syncChipToLocation()
}

// applyFilter selects a filter: push a history entry (no-op when reselecting
// the active one) and recompute the visible subset.
func (m *galleryModel) applyFilter(slug string) {
	m.history.Push(nav.Location{CategorySlug: slug})
	m.rebuildGalleries()
}

// navigateBack / navigateForward are the popstate analog: the filter is
// re-derived from the now-current location and both galleries repainted.
func (m *galleryModel) navigateBack() bool {
	if _, ok := m.history.Back(); !ok {
		return false
	}
	m.rebuildGalleries()
	return true
}

func (m *galleryModel) navigateForward() bool {
	if _, ok := m.history.Forward(); !ok {
		return false
	}
	m.rebuildGalleries()
	return true
}

// chipSlug maps a chip index to its filter slug ("" = all).
func (m galleryModel) chipSlug(idx int) string {
	if idx <= 0 || idx > len(m.categories) {
		return ""
	}
	return model.Slugify(m.categories[idx-1].Name)
}

func (m *galleryModel) syncChipToLocation() {
	active := m.activeSlug()
	m.chipIdx = 0
	for i, c := range m.categories {
		if model.Slugify(c.Name) == active {
			m.chipIdx = i + 1
			return
		}
	}
}

func (m *galleryModel) showFlash(s string) {
	m.flash = s
	m.flashSeq++
}

func (m *galleryModel) resizeLists() {
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	m.publicList.SetSize(w, h)
	m.modalList.SetSize(modalBodyWidth(m.width), h-2)
}
