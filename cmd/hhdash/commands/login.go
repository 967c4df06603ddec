package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"
	"homehealth-dashboard/internal/api"

	"github.com/spf13/cobra"
)

var loginPassword string

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (default: $HHDASH_PASSWORD, or read from stdin)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var loginCmd = &cobra.Command{
	Use:         "login [username]",
	Short:       "Sign in to the api and remember the session.",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipRestore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		session := globals.Get(ctx).Session
		reader := bufio.NewReader(os.Stdin)

		var username string
		if len(args) > 0 {
			username = args[0]
		} else {
			var err error
			username, err = prompt(reader, "Username: ")
			if err != nil {
				return err
			}
		}

		password := loginPassword
		if password == "" {
			password = os.Getenv("HHDASH_PASSWORD")
		}
		if password == "" {
			var err error
			password, err = prompt(reader, "Password: ")
			if err != nil {
				return err
			}
		}

		result := session.Login(ctx, username, password)
		if !result.OK {
			return errors.New(result.Error)
		}
		fmt.Printf("Logged in as %s.\n", session.State().Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:         "logout",
	Short:       "Forget the stored session.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipRestore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := globals.Get(cmd.Context()).Session.Logout(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user of the stored session, as the api sees it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		g := globals.Get(ctx)
		state := g.Session.State()
		if !state.IsAuthenticated {
			fmt.Println("Not logged in.")
			return nil
		}

		username, err := g.Auth.Me(ctx, state.Token)
		if errors.Is(err, api.ErrUnauthorized) {
			g.Session.Expire(ctx)
			return api.ErrSessionExpired
		}
		if err != nil {
			fmt.Printf("%s (not verified: %s)\n", state.Username, utils.ErrorMessage(err))
			return nil
		}
		fmt.Println(username)
		return nil
	},
}
