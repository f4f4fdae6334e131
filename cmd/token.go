package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tetreum/tviso/pkg/tviso"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch an application auth token",
	Long: `Request an application auth token with the configured app id and
secret and print it. Useful to check that the credentials are valid.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	token, err := client.Auth().GetAuthToken(ctx)
	if err != nil {
		var authErr *tviso.AuthTokenError
		if errors.As(err, &authErr) {
			return fmt.Errorf("credentials rejected by Tviso (error %d)", authErr.Code)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
