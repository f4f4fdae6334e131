package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and print a user token",
	Long: `Exchange a Tviso username and password for a user token.

The password is read from the terminal without echo. The token is
printed but not saved; export it so later commands can use it:

  export TVISO_USER_TOKEN=$(tviso login alice)

If a user token is already configured it is printed as is, unless
--force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().Bool("force", false, "Log in again even if a user token is configured")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	client, _, logger, err := newClient()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)
	prompt := cmd.ErrOrStderr()

	var username, password string
	if client.UserToken() == "" || force {
		if len(args) > 0 {
			username = args[0]
		} else {
			fmt.Fprint(prompt, "Tviso username: ")
			username, err = readLine(reader)
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}
		}

		fmt.Fprint(prompt, "Tviso password: ")
		password, err = readPassword(in, reader)
		fmt.Fprintln(prompt)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if username == "" || password == "" {
			return fmt.Errorf("username and password are required")
		}
	}

	token, err := client.Auth().GetUserToken(ctx, username, password, force)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	logger.Info().Str("username", username).Msg("Logged in")
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

// readLine reads one line and trims surrounding whitespace
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads without echo when in is a terminal, or a plain line
// when input is piped
func readPassword(in io.Reader, reader *bufio.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	return readLine(reader)
}
