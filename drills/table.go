package drills

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Table prints an N by N multiplication table, the nested-loop exercise.
func Table(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "table [N]",
		Short: "Print an N by N multiplication table (default 10).",
	}

	return cmd.RunE(p, func() error {
		n := 10
		if args := cmd.Flags().Args(); len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				return fmt.Errorf("N must be a positive integer, got %q", args[0])
			}
			n = parsed
		}

		tw := tabwriter.NewWriter(p.Stdout(), 0, 0, 1, ' ', tabwriter.AlignRight)
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				fmt.Fprintf(tw, "%d\t", row*col)
			}
			fmt.Fprintln(tw)
		}
		return tw.Flush()
	})
}

var _ sandbox.ProcessFunc = Table

func init() {
	mustRegister(Drill{
		Name:  "table",
		Topic: "loops",
		Short: "Multiplication table from nested loops.",
		Day:   4,
		Proc:  Table,
	})
}
