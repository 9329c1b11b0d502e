package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Evenodd classifies each integer argument, the course's first conditional.
func Evenodd(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "evenodd N...",
		Short: "Report whether each integer is even or odd.",
	}

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected at least one integer")
		}

		w := p.Stdout()
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			if n%2 == 0 {
				fmt.Fprintf(w, "%d is even\n", n)
			} else {
				fmt.Fprintf(w, "%d is odd\n", n)
			}
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Evenodd

func init() {
	mustRegister(Drill{
		Name:  "evenodd",
		Topic: "conditionals",
		Short: "Even or odd, the first if/else.",
		Day:   3,
		Proc:  Evenodd,
	})
}
