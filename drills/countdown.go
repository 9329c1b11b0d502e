package drills

import (
	"fmt"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Countdown counts down from N to liftoff, the while-loop exercise.
func Countdown(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "countdown [--from N]",
		Short: "Count down from N to liftoff.",
	}

	from := cmd.Flags().IntLong("from", 'f', 10, "number to count down from")

	return cmd.RunE(p, func() error {
		if *from < 1 {
			return fmt.Errorf("--from must be positive, got %d", *from)
		}

		w := p.Stdout()
		for i := *from; i > 0; i-- {
			fmt.Fprintf(w, "%d...\n", i)
		}
		fmt.Fprintln(w, "Liftoff!")
		return nil
	})
}

var _ sandbox.ProcessFunc = Countdown

func init() {
	mustRegister(Drill{
		Name:  "countdown",
		Topic: "loops",
		Short: "A while loop counting down.",
		Day:   3,
		Proc:  Countdown,
	})
}
