package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Fizzbuzz prints the classic loop-and-modulo exercise: numbers 1..N with
// multiples of 3 replaced by Fizz, multiples of 5 by Buzz, and both by
// FizzBuzz.
func Fizzbuzz(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "fizzbuzz [N]",
		Short: "Play FizzBuzz up to N (default 100).",
	}

	return cmd.RunE(p, func() error {
		n := 100
		if args := cmd.Flags().Args(); len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				return fmt.Errorf("N must be a positive integer, got %q", args[0])
			}
			n = parsed
		}

		w := p.Stdout()
		for i := 1; i <= n; i++ {
			switch {
			case i%15 == 0:
				fmt.Fprintln(w, "FizzBuzz")
			case i%3 == 0:
				fmt.Fprintln(w, "Fizz")
			case i%5 == 0:
				fmt.Fprintln(w, "Buzz")
			default:
				fmt.Fprintln(w, i)
			}
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Fizzbuzz

func init() {
	mustRegister(Drill{
		Name:  "fizzbuzz",
		Topic: "loops",
		Short: "The classic FizzBuzz counting game.",
		Day:   3,
		Proc:  Fizzbuzz,
	})
}
