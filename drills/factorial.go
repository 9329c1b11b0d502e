package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// maxFactorialArg is the largest N whose factorial fits in an int64.
const maxFactorialArg = 20

// Factorial computes N! for each argument, the course's arithmetic loop
// example.
func Factorial(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "factorial N...",
		Short: "Compute the factorial of each argument.",
	}

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected at least one argument")
		}

		w := p.Stdout()
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			switch {
			case err != nil || n < 0:
				return fmt.Errorf("N must be a non-negative integer, got %q", arg)
			case n > maxFactorialArg:
				return fmt.Errorf("%d! overflows, N must be <= %d", n, maxFactorialArg)
			}

			result := int64(1)
			for i := int64(2); i <= int64(n); i++ {
				result *= i
			}
			fmt.Fprintf(w, "%d! = %d\n", n, result)
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Factorial

func init() {
	mustRegister(Drill{
		Name:  "factorial",
		Topic: "arithmetic",
		Short: "Factorials with an overflow guard.",
		Day:   5,
		Proc:  Factorial,
	})
}
