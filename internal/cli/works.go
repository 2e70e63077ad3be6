package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"atelier-cli/internal/api"
	"atelier-cli/internal/bus"
	"atelier-cli/internal/cache"
	"atelier-cli/internal/config"
	"atelier-cli/internal/model"
)

func newWorksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "works",
		Short: "List and manage the gallery's works",
	}

	cmd.AddCommand(newWorksListCmd(app))
	cmd.AddCommand(newWorksAddCmd(app))
	cmd.AddCommand(newWorksDeleteCmd(app))

	return cmd
}

func newWorksListCmd(app *App) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every work, in backend order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if offline {
				return listWorksOffline(cmd, app)
			}

			client := app.client()
			works, err := client.ListWorks(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			// Keep the offline snapshot fresh on every successful fetch.
			if dir, derr := config.Dir(); derr == nil {
				if snap, serr := cache.Open(dir); serr == nil {
					_ = snap.SaveSnapshot(works, categories)
					_ = snap.Close()
				}
			}
			return writeOut(cmd, app, works)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Read the last fetched snapshot instead of the backend")

	return cmd
}

func listWorksOffline(cmd *cobra.Command, app *App) error {
	dir, err := config.Dir()
	if err != nil {
		return writeErr(cmd, err)
	}
	snap, err := cache.Open(dir)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer snap.Close()

	works, _, fetchedAt, err := snap.LoadSnapshot()
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, map[string]any{
		"works": works,
		"meta":  map[string]any{"stale": true, "fetchedAt": fetchedAt},
	})
}

func newWorksAddCmd(app *App) *cobra.Command {
	var image string
	var title string
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Upload a new work (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession()
			if err != nil {
				return writeErr(cmd, err)
			}
			if image == "" || title == "" || category == "" {
				return writeErr(cmd, errors.New("missing --image, --title or --category"))
			}

			st, err := os.Stat(image)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := model.CheckImage(image, st.Size()); err != nil {
				return writeErr(cmd, err)
			}

			clean := strings.TrimSpace(model.SanitizeTitle(title))
			if !model.ValidTitle(clean) {
				return writeErr(cmd, fmt.Errorf("invalid title %q", title))
			}

			client := app.client()
			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			cat, ok := resolveCategory(categories, category)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown category %q", category))
			}

			f, err := os.Open(image)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer f.Close()

			w, err := client.CreateWork(cmd.Context(), api.CreateWorkRequest{
				Title:      clean,
				CategoryID: cat.ID,
				ImageName:  image,
				Image:      f,
			}, sess.Token)
			if err != nil {
				return writeErr(cmd, err)
			}

			w = model.NormalizeCategory(w, cat.ID, cat.Name, categories)
			bus.New(openJournal()).PublishCreated(w)
			return writeOut(cmd, app, w)
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Path to a jpg or png image (max 4 MiB)")
	cmd.Flags().StringVar(&title, "title", "", "Work title")
	cmd.Flags().StringVar(&category, "category", "", "Category name, slug or id")

	return cmd
}

func newWorksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <work-id>",
		Short: "Delete a work by id (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession()
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid work id %q", args[0]))
			}

			if err := app.client().DeleteWork(cmd.Context(), id, sess.Token); err != nil {
				// An already-gone work is a success: someone else deleted it first.
				if api.StatusOf(err) != http.StatusNotFound {
					return writeErr(cmd, err)
				}
			}
			bus.New(openJournal()).PublishDeleted(id)
			return writeOut(cmd, app, map[string]any{"id": id, "deleted": true})
		},
	}
}

// resolveCategory matches a --category value against the backend's categories
// by id, exact name, or slug.
func resolveCategory(categories []model.Category, ref string) (model.Category, bool) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if cat, ok := model.CategoryByID(categories, id); ok {
			return cat, true
		}
	}
	for _, cat := range categories {
		if cat.Name == ref || model.Slugify(cat.Name) == model.Slugify(ref) {
			return cat, true
		}
	}
	return model.Category{}, false
}
