package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litchilabs/lychee"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lychee", lychee.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
