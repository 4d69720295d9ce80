package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/litchilabs/lychee/pkg/adapters/mcp"
	"github.com/litchilabs/lychee/pkg/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the engine over the Model Context Protocol (stdio)",
	Long:  `Exposes refine_prompt and answer_questions as MCP tools on stdin/stdout, for agent hosts that want to refine prompts as a tool call.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		engine, err := buildEngine(cmd, logger, domain.LifecycleHooks{})
		if err != nil {
			fmt.Printf("Error initializing lychee: %v\n", err)
			os.Exit(1)
		}

		srv := mcp.NewServer(engine)
		if err := srv.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
