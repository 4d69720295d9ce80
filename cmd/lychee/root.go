package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/litchilabs/lychee"
	"github.com/litchilabs/lychee/internal/logging"
	"github.com/litchilabs/lychee/pkg/adapters/gemini"
	"github.com/litchilabs/lychee/pkg/domain"
	"github.com/litchilabs/lychee/pkg/template"
)

var rootCmd = &cobra.Command{
	Use:   "lychee",
	Short: "Lychee turns rough prompts into structured thinking plans",
	Long:  `Lychee normalizes a free-form prompt, asks clarifying questions when needed, and produces a structured thinking plan. The server side is fully stateless; conversation state travels with the client.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("model", "", "Gemini model name (default "+gemini.DefaultModel+")")
	rootCmd.PersistentFlags().String("templates", "", "Path to a YAML prompt template file (default: embedded prompts)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newLogger builds the application logger from the --debug flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// buildEngine assembles an engine from the shared flags and environment.
func buildEngine(cmd *cobra.Command, logger *slog.Logger, hooks domain.LifecycleHooks) (*lychee.Engine, error) {
	key, err := gemini.LoadAPIKey()
	if err != nil {
		return nil, err
	}
	model, _ := cmd.Flags().GetString("model")

	opts := []lychee.Option{
		lychee.WithGenerator(gemini.New(key, model)),
		lychee.WithLogger(logger),
		lychee.WithLifecycleHooks(hooks),
	}

	if path, _ := cmd.Flags().GetString("templates"); path != "" {
		store, err := template.FromFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lychee.WithTemplates(store))
	}

	return lychee.New(opts...)
}
