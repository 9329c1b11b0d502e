package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/config"
)

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Create a course workspace with starter scripts and exercises",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		logger := log.New(os.Stdout, "", 0)
		if _, err := config.Initialize(dir, logger); err != nil {
			return err
		}

		logger.Println("Workspace ready. Start with: shelldrill lesson 1")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
