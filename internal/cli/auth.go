package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"atelier-cli/internal/api"
	"atelier-cli/internal/session"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the admin session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return writeErr(cmd, errors.New("missing --email or --password"))
			}

			s, err := app.client().Login(cmd.Context(), email, password)
			if err != nil {
				if api.IsInvalidCredentials(err) {
					return writeErr(cmd, errors.New("invalid email or password"))
				}
				return writeErr(cmd, err)
			}

			if err := session.Save(session.Session{Token: s.Token, UserID: s.UserID}); err != nil {
				return writeErr(cmd, fmt.Errorf("store session: %w", err))
			}
			return writeOut(cmd, app, map[string]any{"userId": s.UserID, "loggedIn": true})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Clearing an absent session is fine: logout is idempotent.
			if err := session.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"loggedOut": true})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if !s.IsAuthenticated() {
				return writeOut(cmd, app, map[string]any{"authenticated": false})
			}
			return writeOut(cmd, app, map[string]any{"authenticated": true, "userId": s.UserID})
		},
	}
}
