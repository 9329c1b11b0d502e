package drills

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Vowels tallies vowels, consonants, digits and other characters per
// argument, the character-classification exercise.
func Vowels(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "vowels STRING...",
		Short: "Count vowels, consonants and digits in each string.",
	}

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected at least one string")
		}

		w := p.Stdout()
		for _, arg := range args {
			var vowels, consonants, digits, others int
			for _, r := range strings.ToLower(arg) {
				switch {
				case strings.ContainsRune("aeiou", r):
					vowels++
				case unicode.IsLetter(r):
					consonants++
				case unicode.IsDigit(r):
					digits++
				default:
					others++
				}
			}
			fmt.Fprintf(w, "%s: %d vowels, %d consonants, %d digits, %d other\n",
				arg, vowels, consonants, digits, others)
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Vowels

func init() {
	mustRegister(Drill{
		Name:  "vowels",
		Topic: "strings",
		Short: "Character classification counts.",
		Day:   2,
		Proc:  Vowels,
	})
}
