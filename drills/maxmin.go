package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Maxmin scans its integer arguments for the maximum, minimum, sum and
// average, the array-iteration exercise.
func Maxmin(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "maxmin N N...",
		Short: "Print the max, min, sum and average of the arguments.",
	}

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			return fmt.Errorf("expected at least two integers, got %d", len(args))
		}

		var values []int
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			values = append(values, n)
		}

		max, min, sum := values[0], values[0], 0
		for _, v := range values {
			if v > max {
				max = v
			}
			if v < min {
				min = v
			}
			sum += v
		}

		w := p.Stdout()
		fmt.Fprintf(w, "max: %d\n", max)
		fmt.Fprintf(w, "min: %d\n", min)
		fmt.Fprintf(w, "sum: %d\n", sum)
		fmt.Fprintf(w, "avg: %.2f\n", float64(sum)/float64(len(values)))
		return nil
	})
}

var _ sandbox.ProcessFunc = Maxmin

func init() {
	mustRegister(Drill{
		Name:  "maxmin",
		Topic: "arrays",
		Short: "Scan a list for max, min, sum and average.",
		Day:   7,
		Proc:  Maxmin,
	})
}
