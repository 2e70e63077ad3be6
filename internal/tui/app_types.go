package tui

// screen is the top-level page: the public gallery or the login form.
type screen int

const (
	screenGallery screen = iota
	screenLogin
)

// modalStep is the admin modal's state machine. Closed -> Browse on the edit
// affordance, Browse -> Add on "add a photo", Add -> Browse on back, and
// either step -> Closed on Escape. Leaving Add for Closed resets the form's
// transient state so reopening starts fresh.
type modalStep int

const (
	stepClosed modalStep = iota
	stepBrowse
	stepAdd
)

// addFocus is the Add step's focus cycle. Tab/Shift+Tab wrap within these
// four controls while the modal is open; focus never escapes to the page
// behind it.
type addFocus int

const (
	focusImage addFocus = iota
	focusTitle
	focusCategory
	focusSubmit
)

// loginFocus mirrors addFocus for the login form.
type loginFocus int

const (
	loginFocusEmail loginFocus = iota
	loginFocusPassword
	loginFocusSubmit
)
