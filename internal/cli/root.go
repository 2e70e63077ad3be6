package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"atelier-cli/internal/api"
	"atelier-cli/internal/bus"
	"atelier-cli/internal/cache"
	"atelier-cli/internal/config"
	"atelier-cli/internal/model"
	"atelier-cli/internal/session"
	"atelier-cli/internal/tui"
)

type App struct {
	API        string
	PrettyJSON bool
	Category   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "atelier",
		Short:        "Portfolio gallery client (TUI + scriptable commands)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive gallery
  atelier

  # Open it already filtered, like visiting /gallery?category=objets
  atelier --category objets

  # Scriptable commands
  atelier works list
  atelier works add --image chair.png --title "Chair" --category Objets
  atelier works delete 42
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.API, "api", envOr("ATELIER_API_URL", ""), "Backend API root (default: http://localhost:5678/api)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&app.Category, "category", "", "Open the gallery filtered to a category slug")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newWorksCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg := config.Load()
	if app.API != "" {
		cfg.APIURL = app.API
	}

	// A broken session file degrades to the anonymous gallery.
	sess, _ := session.Load()

	b := bus.New(openJournal())
	if cfg.DebugLogPath != "" {
		// tui.Run redirects the default logger to the debug file, so these
		// land there, never on the TUI's terminal.
		b.SubscribeCreated(func(w model.Work) { log.Printf("bus: work created id=%d title=%q", w.ID, w.Title) })
		b.SubscribeDeleted(func(id int64) { log.Printf("bus: work deleted id=%d", id) })
	}

	deps := tui.Deps{
		Config:  cfg,
		Client:  api.New(cfg.APIURL),
		Session: sess,
		Bus:     b,
	}

	// The snapshot cache is best effort: an unusable config dir just means no
	// offline fallback.
	if dir, err := config.Dir(); err == nil {
		if snap, err := cache.Open(dir); err == nil {
			deps.Snapshot = snap
			defer snap.Close()
		}
	}

	location := "/gallery"
	if app.Category != "" {
		location = "/gallery?category=" + app.Category
	}
	return tui.Run(deps, location)
}

func (app *App) client() *api.Client {
	base := app.API
	if base == "" {
		base = config.Load().APIURL
	}
	return api.New(base)
}

// requireSession loads the stored admin session or fails with a hint.
func requireSession() (*session.Session, error) {
	s, err := session.Load()
	if err != nil {
		return nil, err
	}
	if !s.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in; run `atelier login --email ...` first")
	}
	return s, nil
}

// openJournal returns the event journal under the config dir, or nil when the
// dir cannot be resolved (journaling is best effort).
func openJournal() *bus.Journal {
	dir, err := config.Dir()
	if err != nil {
		return nil
	}
	return bus.NewJournal(dir)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	var b []byte
	var err error
	if app.PrettyJSON {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
