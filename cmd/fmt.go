package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/runner"
)

var (
	fmtWrite  bool
	fmtList   bool
	fmtIndent int
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE...",
	Short: "Canonically format shell scripts",
	Long: `Fmt rewrites shell scripts into a canonical style. By default the
formatted source goes to stdout; -w writes it back in place, -l only lists
files whose formatting differs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		differed := 0
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			formatted, err := runner.Format(src, path, fmtIndent)
			if err != nil {
				return err
			}

			switch {
			case fmtList:
				if !bytes.Equal(src, formatted) {
					fmt.Fprintln(cmd.OutOrStdout(), path)
					differed++
				}
			case fmtWrite:
				if bytes.Equal(src, formatted) {
					continue
				}
				info, err := os.Stat(path)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
					return err
				}
			default:
				if _, err := cmd.OutOrStdout().Write(formatted); err != nil {
					return err
				}
			}
		}

		if differed > 0 {
			cmd.SilenceErrors = true
			return &exitCodeError{code: 1}
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().IntVarP(&fmtIndent, "indent", "i", 0, "indent with this many spaces, 0 for tabs")
	rootCmd.AddCommand(fmtCmd)
}
