package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"

	"atelier-cli/internal/model"
)

// addForm is the Add step's transient state. Field validity is recomputed
// after every change; the submit control is enabled only while all three
// fields are valid, and field errors show only once the field was touched.
type addForm struct {
	picker  filepicker.Model
	picking bool

	imagePath string
	imageSize int64

	titleInput  textinput.Model
	categoryIdx int

	focus addFocus

	touchedImage    bool
	touchedTitle    bool
	touchedCategory bool

	imageErr    string
	titleErr    string
	categoryErr string

	// submitErr is the single form-level error after a failed network create.
	submitErr  string
	submitting bool
}

func newAddForm() addForm {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".jpg", ".jpeg", ".png"}
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = model.MaxTitleLen
	ti.Width = 40

	return addForm{
		picker:      fp,
		titleInput:  ti,
		categoryIdx: -1,
	}
}

// reset clears everything transient so reopening the modal starts fresh.
// This is the Add -> Closed reset; closing from Browse never calls it.
func (f *addForm) reset() {
	*f = newAddForm()
}

// setImage validates and records a picked file. An invalid pick is rejected:
// the selection is cleared and an inline error shown.
func (f *addForm) setImage(path string) {
	f.touchedImage = true

	st, err := os.Stat(path)
	if err != nil {
		f.imagePath, f.imageSize = "", 0
		f.imageErr = "Could not read the selected file"
		return
	}
	if err := model.CheckImage(path, st.Size()); err != nil {
		f.imagePath, f.imageSize = "", 0
		switch {
		case errors.Is(err, model.ErrImageType):
			f.imageErr = "Only jpg and png images are accepted"
		case errors.Is(err, model.ErrImageTooLarge):
			f.imageErr = "Image must be 4 MiB or smaller"
		default:
			f.imageErr = err.Error()
		}
		return
	}

	f.imagePath, f.imageSize = path, st.Size()
	f.imageErr = ""
}

// sanitizeTitle reapplies the allow-list after every edit, dropping
// disallowed runes the instant they are typed or pasted.
func (f *addForm) sanitizeTitle() {
	raw := f.titleInput.Value()
	clean := model.SanitizeTitle(raw)
	if clean != raw {
		// Runes dropped after the cursor must not pull it left, so the new
		// position is the sanitized length of what preceded it.
		pos := f.titleInput.Position()
		runes := []rune(raw)
		if pos > len(runes) {
			pos = len(runes)
		}
		f.titleInput.SetValue(clean)
		f.titleInput.SetCursor(len([]rune(model.SanitizeTitle(string(runes[:pos])))))
	}
	if f.touchedTitle {
		f.revalidateTitle()
	}
}

func (f *addForm) revalidateTitle() {
	if !model.ValidTitle(f.titleInput.Value()) {
		f.titleErr = "Title is required"
	} else {
		f.titleErr = ""
	}
}

func (f *addForm) revalidateCategory() {
	if f.categoryIdx < 0 {
		f.categoryErr = "Pick a category"
	} else {
		f.categoryErr = ""
	}
}

func (f *addForm) imageValid() bool {
	return f.imagePath != "" && model.CheckImage(f.imagePath, f.imageSize) == nil
}

// valid is the conjunction gating the submit control and, independently, the
// submission itself: an invalid form never reaches the network.
func (f *addForm) valid() bool {
	return f.imageValid() && model.ValidTitle(f.titleInput.Value()) && f.categoryIdx >= 0
}
