// Package main is an offline command line front end for the outfit engine.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"stylistapi/config"
	"stylistapi/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "stylist",
		Short:         "Outfit recommendations from a wardrobe file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(logging.Config{Level: logLevel, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", config.GetEnv("LOG_LEVEL", "warn"), "debug, info, warn or error")
	root.AddCommand(newRecommendCmd(), newSuggestCmd(), newCatalogCmd())
	return root
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func readJSONFile(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
