package drills

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Guess is the course's interactive-input exercise: a number guessing game
// reading guesses from stdin. The answer is seeded from the session clock so
// the game is deterministic under the test harness.
func Guess(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "guess [--max N]",
		Short: "Guess the secret number with higher/lower hints.",
	}

	max := cmd.Flags().IntLong("max", 'm', 100, "upper bound of the secret number")

	return cmd.Run(p, func() int {
		if *max < 1 {
			fmt.Fprintf(p.Stderr(), "%s: --max must be positive\n", p.Args()[0])
			return 1
		}

		rng := rand.New(rand.NewSource(p.Now().UnixNano()))
		answer := rng.Intn(*max) + 1

		in := bufio.NewScanner(p.Stdin())
		out := p.Stdout()

		for tries := 1; ; tries++ {
			fmt.Fprintf(out, "Guess a number between 1 and %d: ", *max)
			if !in.Scan() {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Giving up? The answer was %d.\n", answer)
				return 1
			}

			guess, err := strconv.Atoi(in.Text())
			if err != nil {
				fmt.Fprintln(out, "That's not a number, try again.")
				continue
			}

			switch {
			case guess < answer:
				fmt.Fprintln(out, "Higher!")
			case guess > answer:
				fmt.Fprintln(out, "Lower!")
			default:
				fmt.Fprintf(out, "Correct! You got it in %d tries.\n", tries)
				return 0
			}
		}
	})
}

var _ sandbox.ProcessFunc = Guess

func init() {
	mustRegister(Drill{
		Name:  "guess",
		Topic: "input",
		Short: "Interactive number guessing game.",
		Day:   6,
		Proc:  Guess,
	})
}
