package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/litchilabs/lychee/internal/cli"
	"github.com/litchilabs/lychee/pkg/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive prompt-refinement session",
	Long:  `Reads a prompt from the terminal, asks clarifying questions when needed, and prints the structured thinking plan.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		engine, err := buildEngine(cmd, logger, domain.LifecycleHooks{})
		if err != nil {
			fmt.Printf("Error initializing lychee: %v\n", err)
			os.Exit(1)
		}

		cli.PrintBanner()

		chat := &cli.Chat{
			Engine: engine,
			Input:  os.Stdin,
			Output: os.Stdout,
		}
		if err := chat.Run(cmd.Context()); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	// Running 'lychee' with no subcommand starts a chat.
	rootCmd.Run = chatCmd.Run
}
