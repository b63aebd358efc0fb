package main

import (
	"errors"
	"fmt"

	"veritas/internal/api"
	"veritas/internal/store"

	"github.com/spf13/cobra"
)

var (
	authUsername string
	authPassword string
	authEmail    string
	authConfirm  string
)

// loginCmd authenticates and persists the token for later commands.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the token",
	Long: `Authenticate with username and password.

On success the access token is persisted to the veritas config
directory and reused by every other command until logout.`,
	RunE: runLogin,
}

// registerCmd creates an account. It never logs the user in.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

// logoutCmd tears the stored session down.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored token and all local session state",
	RunE:  runLogout,
}

// whoamiCmd shows the profile behind the stored token.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the profile for the stored token",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&authUsername, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&authPassword, "password", "p", "", "account password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVarP(&authUsername, "username", "u", "", "account username")
	registerCmd.Flags().StringVarP(&authEmail, "email", "e", "", "account email")
	registerCmd.Flags().StringVarP(&authPassword, "password", "p", "", "account password")
	registerCmd.Flags().StringVar(&authConfirm, "confirm", "", "password confirmation (defaults to --password)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	application, err := buildApp()
	if err != nil {
		return err
	}

	if err := application.Login(cmd.Context(), authUsername, authPassword); err != nil {
		return fmt.Errorf("login failed: %s", api.UserMessage(err))
	}
	fmt.Printf("Logged in as %s. Token stored.\n", authUsername)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	application, err := buildApp()
	if err != nil {
		return err
	}

	confirm := authConfirm
	if confirm == "" {
		confirm = authPassword
	}

	err = application.Register(cmd.Context(), store.RegistrationForm{
		Username:        authUsername,
		Email:           authEmail,
		Password:        authPassword,
		ConfirmPassword: confirm,
	})
	if err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("invalid %s: %s", vErr.Field, vErr.Message)
		}
		return fmt.Errorf("registration failed: %s", api.UserMessage(err))
	}

	fmt.Println("Account created. Run 'veritas login' to sign in.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	application, err := buildApp()
	if err != nil {
		return err
	}

	if !application.Session.Authenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	application.Logout()
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	application, err := buildApp()
	if err != nil {
		return err
	}

	profile, err := application.FetchProfile(cmd.Context())
	if err != nil {
		return fmt.Errorf("not logged in: %s", api.UserMessage(err))
	}

	fmt.Printf("%s <%s>\n", profile.Username, profile.Email)
	if profile.IsAdmin {
		fmt.Println("role: admin")
	}
	return nil
}
