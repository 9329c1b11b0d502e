package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Sumdigits adds up the decimal digits of each argument.
func Sumdigits(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "sumdigits N...",
		Short: "Sum the decimal digits of each integer.",
	}

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected at least one integer")
		}

		w := p.Stdout()
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return fmt.Errorf("N must be a non-negative integer, got %q", arg)
			}

			sum := 0
			for rest := n; rest > 0; rest /= 10 {
				sum += rest % 10
			}
			fmt.Fprintf(w, "%d -> %d\n", n, sum)
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Sumdigits

func init() {
	mustRegister(Drill{
		Name:  "sumdigits",
		Topic: "arithmetic",
		Short: "Digit sums with modulo and division.",
		Day:   5,
		Proc:  Sumdigits,
	})
}
