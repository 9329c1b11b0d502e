package drills

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

func normalizePalindrome(s string, strict bool) string {
	if strict {
		return s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Palindrome reports whether each argument reads the same forwards and
// backwards. The exit status reflects the verdict so the drill composes with
// && and || in the practice shell.
func Palindrome(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "palindrome [-s] STRING...",
		Short: "Check whether strings are palindromes.",
	}

	strict := cmd.Flags().Bool('s', "strict: keep case, spaces and punctuation")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintf(p.Stderr(), "%s: %v\n", p.Args()[0], errors.New("expected at least one string"))
			return 1
		}

		w := p.Stdout()
		allPalindromes := true
		for _, arg := range args {
			normalized := normalizePalindrome(arg, *strict)
			if normalized == reverseString(normalized) {
				fmt.Fprintf(w, "%s: palindrome\n", arg)
			} else {
				fmt.Fprintf(w, "%s: not a palindrome\n", arg)
				allPalindromes = false
			}
		}

		if !allPalindromes {
			return 1
		}
		return 0
	})
}

var _ sandbox.ProcessFunc = Palindrome

func init() {
	mustRegister(Drill{
		Name:  "palindrome",
		Topic: "strings",
		Short: "Palindrome checker with shell-friendly exit status.",
		Day:   2,
		Proc:  Palindrome,
	})
}
