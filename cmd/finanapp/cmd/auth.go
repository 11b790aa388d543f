package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finanapp/client-go/internal/domain"
	"github.com/finanapp/client-go/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		profile, err := deps.Session.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		if err := deps.API.SaveSession(deps.Config.SessionFile); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", profile.FullName(), profile.EmailAddress)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Terminate the server-side session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.Session.Logout(cmd.Context()); err != nil {
			// The server still holds the session, so the local cookie is
			// deliberately kept; claiming "logged out" here would lie.
			return fmt.Errorf("logout failed, session kept: %w", err)
		}
		if err := deps.API.ClearSession(deps.Config.SessionFile); err != nil {
			return err
		}
		fmt.Println("You are logged out!")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := session.RegisterRequest{}
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.DateOfBirth, _ = cmd.Flags().GetString("date-of-birth")

		if err := deps.Session.Register(cmd.Context(), req); err != nil {
			return err
		}
		fmt.Println("Account created successfully! Log in with \"finanapp login\".")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		user := deps.Session.State().User
		fmt.Printf("%s <%s>\n", user.FullName(), user.EmailAddress)
		if user.UserType != nil {
			fmt.Printf("Role: %s\n", user.UserType.Name)
		}
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the logged-in user's profile",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name and date of birth",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		update := domain.ProfileUpdate{}
		update.FirstName, _ = cmd.Flags().GetString("first-name")
		update.LastName, _ = cmd.Flags().GetString("last-name")
		update.DateOfBirth, _ = cmd.Flags().GetString("date-of-birth")

		if err := deps.Session.UpdateProfile(cmd.Context(), update); err != nil {
			return err
		}
		fmt.Println("Profile updated.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email address")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")
	registerCmd.Flags().String("email", "", "email address")
	registerCmd.Flags().String("password", "", "password (min 8 characters)")
	registerCmd.Flags().String("date-of-birth", "", "date of birth (YYYY-MM-DD)")

	profileUpdateCmd.Flags().String("first-name", "", "first name")
	profileUpdateCmd.Flags().String("last-name", "", "last name")
	profileUpdateCmd.Flags().String("date-of-birth", "", "date of birth (YYYY-MM-DD)")
	profileCmd.AddCommand(profileUpdateCmd)

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd, profileCmd)
}
