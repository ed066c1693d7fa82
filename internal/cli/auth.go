package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/wire"
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in to the report backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := passwordFromFlagOrPrompt(cmd)
		if err != nil {
			return err
		}
		return wire.AuthAdapter().Login(cmd.Context(), args[0], password)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register [username] [email]",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := passwordFromFlagOrPrompt(cmd)
		if err != nil {
			return err
		}
		return wire.AuthAdapter().Register(cmd.Context(), args[0], args[1], password)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AuthAdapter().Logout(cmd.Context())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AuthAdapter().WhoAmI(cmd.Context())
	},
}

func passwordFromFlagOrPrompt(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}

	fmt.Print("Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
}

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	return loginCmd
}

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	return registerCmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return logoutCmd
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return whoamiCmd
}
