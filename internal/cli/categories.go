package cli

import (
	"github.com/spf13/cobra"

	"atelier-cli/internal/model"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the gallery's categories",
	}

	cmd.AddCommand(newCategoriesListCmd(app))

	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their filter slugs",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.client().ListCategories(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			type row struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
				Slug string `json:"slug"`
			}
			out := make([]row, 0, len(categories))
			for _, cat := range categories {
				out = append(out, row{ID: cat.ID, Name: cat.Name, Slug: model.Slugify(cat.Name)})
			}
			return writeOut(cmd, app, out)
		},
	}
}
