package drills

import (
	"bufio"
	"fmt"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Reverse prints its arguments reversed, one per line. With no arguments it
// reverses each line of standard input instead.
func Reverse(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "reverse [STRING]...",
		Short: "Reverse each argument, or each line of standard input.",
	}

	return cmd.RunE(p, func() error {
		w := p.Stdout()

		args := cmd.Flags().Args()
		if len(args) > 0 {
			for _, arg := range args {
				fmt.Fprintln(w, reverseString(arg))
			}
			return nil
		}

		scanner := bufio.NewScanner(p.Stdin())
		for scanner.Scan() {
			fmt.Fprintln(w, reverseString(scanner.Text()))
		}
		return scanner.Err()
	})
}

var _ sandbox.ProcessFunc = Reverse

func init() {
	mustRegister(Drill{
		Name:  "reverse",
		Topic: "strings",
		Short: "Reverse strings from arguments or stdin.",
		Day:   2,
		Proc:  Reverse,
	})
}
