package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tetreum/tviso/internal/config"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store Tviso API credentials",
	Long: `Prompt for a Tviso application id and secret and save them to
~/.config/tviso/config.yaml.

User tokens are never written to the config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Tviso Configuration")
	fmt.Fprintln(out, "===================")
	fmt.Fprintln(out)

	// Check if we already have credentials
	if cfg.Tviso.App != "" && cfg.Tviso.Secret != "" {
		fmt.Fprintf(out, "Found existing API credentials.\n")
		fmt.Fprintf(out, "App: %s\n", cfg.Tviso.App)
		fmt.Fprint(out, "\nReplace them? [y/N]: ")
		response, err := readLine(reader)
		if err != nil {
			response = "n"
		}
		response = strings.ToLower(response)
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Keeping existing credentials.")
			return nil
		}
		cfg.Tviso.App = ""
		cfg.Tviso.Secret = ""
	}

	fmt.Fprint(out, "Enter your Tviso app id: ")
	cfg.Tviso.App, err = readLine(reader)
	if err != nil {
		return fmt.Errorf("failed to read app id: %w", err)
	}

	fmt.Fprint(out, "Enter your Tviso app secret: ")
	cfg.Tviso.Secret, err = readLine(reader)
	if err != nil {
		return fmt.Errorf("failed to read app secret: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Credentials saved to %s/config.yaml\n", config.GetConfigDir())
	fmt.Fprintln(out, "\nRun 'tviso token' to check them.")
	return nil
}
