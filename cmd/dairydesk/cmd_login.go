package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"dairydesk/internal/api"
)

var loginEmailFlag string

// loginCmd authenticates from the shell without starting the UI, handy for
// scripting and for seeding a session before the first interactive run.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, store, err := bootstrap()
		if err != nil {
			return err
		}
		if loginEmailFlag == "" {
			return fmt.Errorf("--email is required")
		}

		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		resp, err := client.Login(cmd.Context(), api.LoginRequest{
			Email:    loginEmailFlag,
			Password: string(raw),
		})
		if err != nil {
			return err
		}
		if err := store.SaveLogin(resp.Token, resp.User); err != nil {
			return err
		}
		logger.Info("logged in", zap.String("email", resp.User.Email), zap.String("role", string(resp.User.Role)))
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
		return nil
	},
}

// logoutCmd clears all persisted session state.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, err := bootstrap()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Session cleared.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmailFlag, "email", "", "account email")
}
