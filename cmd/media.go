package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// mediaCmd represents the media command
var mediaCmd = &cobra.Command{
	Use:   "media <idm>",
	Short: "Show information about a media",
	Long: `Fetch metadata for a media from Tviso.

By default the basic_info endpoint is used; pass --full for full_info.
Output is indented JSON unless a Go template is given with --format,
for example:

  tviso media 42 --format '{{.name}} ({{.year}})'`,
	Args: cobra.ExactArgs(1),
	RunE: runMedia,
}

func init() {
	rootCmd.AddCommand(mediaCmd)

	mediaCmd.Flags().IntP("type", "t", 1, "Media type")
	mediaCmd.Flags().Bool("full", false, "Fetch full info instead of basic info")
	mediaCmd.Flags().StringP("format", "f", "", "Output format template (overrides config)")
	mediaCmd.Flags().IntP("width", "w", 0, "Fixed output width for templated output (0=disabled, overrides config)")
}

func runMedia(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid media id %q: %w", args[0], err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	client, cfg, logger, err := newClient()
	if err != nil {
		return err
	}

	mediaType, _ := cmd.Flags().GetInt("type")
	full, _ := cmd.Flags().GetBool("full")

	logger.Info().
		Int("idm", id).
		Int("media_type", mediaType).
		Bool("full", full).
		Msg("Fetching media info")

	resp, err := client.Media().GetMediaInfo(ctx, id, mediaType, full)
	if err != nil {
		return fmt.Errorf("failed to get media info: %w", err)
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
