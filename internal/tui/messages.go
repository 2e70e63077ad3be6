package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"atelier-cli/internal/api"
	"atelier-cli/internal/cache"
	"atelier-cli/internal/model"
)

// bootstrapMsg carries the initial gallery state. When the backend is down
// but an offline snapshot exists, stale is true and fetchedAt says how old it
// is. err is set only when both the network and the snapshot failed.
type bootstrapMsg struct {
	works      []model.Work
	categories []model.Category
	stale      bool
	fetchedAt  time.Time
	err        error
}

type loginDoneMsg struct {
	sess api.Session
	err  error
}

// createDoneMsg is the completion of one create submission. The selected
// category id/label ride along so the response can be normalized even when
// the server omits the embedded category.
type createDoneMsg struct {
	work         model.Work
	selectedID   int64
	selectedName string
	err          error
}

// deleteDoneMsg is the completion of one delete. Each completion only ever
// touches the one work it owns, so overlapping deletes cannot corrupt each
// other's rendering.
type deleteDoneMsg struct {
	id  int64
	err error
}

type flashDoneMsg struct{ seq int }

func bootstrapCmd(client *api.Client, snap *cache.Cache) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		works, werr := client.ListWorks(ctx)
		cats, cerr := client.ListCategories(ctx)
		if werr == nil && cerr == nil {
			if snap != nil {
				// Best effort; a failed snapshot write must not fail the fetch.
				_ = snap.SaveSnapshot(works, cats)
			}
			return bootstrapMsg{works: works, categories: cats}
		}

		if snap != nil {
			cw, cc, at, err := snap.LoadSnapshot()
			if err == nil && (len(cw) > 0 || len(cc) > 0) {
				return bootstrapMsg{works: cw, categories: cc, stale: true, fetchedAt: at}
			}
		}
		if werr != nil {
			return bootstrapMsg{err: werr}
		}
		return bootstrapMsg{err: cerr}
	}
}

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		s, err := client.Login(context.Background(), email, password)
		return loginDoneMsg{sess: s, err: err}
	}
}

func createWorkCmd(client *api.Client, token, imagePath, title string, cat model.Category) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(imagePath)
		if err != nil {
			return createDoneMsg{selectedID: cat.ID, selectedName: cat.Name, err: err}
		}
		defer f.Close()

		w, err := client.CreateWork(context.Background(), api.CreateWorkRequest{
			Title:      title,
			CategoryID: cat.ID,
			ImageName:  imagePath,
			Image:      f,
		}, token)
		return createDoneMsg{work: w, selectedID: cat.ID, selectedName: cat.Name, err: err}
	}
}

func deleteWorkCmd(client *api.Client, token string, id int64) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteWork(context.Background(), id, token)
		return deleteDoneMsg{id: id, err: err}
	}
}

func flashCmd(seq int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
