package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/runner"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse shell scripts and report syntax errors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		failed := 0
		for _, path := range args {
			fd, err := os.Open(path)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				failed++
				continue
			}

			err = runner.Check(path, fd)
			fd.Close()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", path)
		}

		if failed > 0 {
			cmd.SilenceErrors = true
			return &exitCodeError{code: 1}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
