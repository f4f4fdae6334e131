package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tetreum/tviso/pkg/tviso"
)

// pendingCmd represents the pending command
var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List the user's pending medias",
	Long: `List the medias pending for the logged in user.

Requires a user token, from --user-token, TVISO_USER_TOKEN or the
config file. Run 'tviso login' to get one.`,
	Args: cobra.NoArgs,
	RunE: runPending,
}

func init() {
	rootCmd.AddCommand(pendingCmd)

	pendingCmd.Flags().StringP("format", "f", "", "Output format template (overrides config)")
	pendingCmd.Flags().IntP("width", "w", 0, "Fixed output width for templated output (0=disabled, overrides config)")
}

func runPending(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	client, cfg, logger, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Media().GetPendingMedias(ctx)
	if errors.Is(err, tviso.ErrMissingUserToken) {
		return fmt.Errorf("%w. Run 'tviso login' and set TVISO_USER_TOKEN", err)
	}
	if err != nil {
		return fmt.Errorf("failed to get pending medias: %w", err)
	}

	if resp.Error != 0 {
		logger.Warn().Int("error", resp.Error).Msg("API returned an error code")
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.OutputFormat
	}
	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = cfg.OutputWidth
	}

	return printResponse(cmd, resp, format, width)
}

// printResponse formats resp and writes it to the command's output
func printResponse(cmd *cobra.Command, resp *tviso.Response, format string, width int) error {
	output, err := formatResponse(resp, format, width)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
