package drills

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

// Strcase rewrites strings in upper, lower or title case, the parameter
// expansion (${var^^}, ${var,,}) analogue.
func Strcase(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "strcase -u|-l|-t STRING...",
		Short: "Convert strings to upper, lower or title case.",
	}

	upper := cmd.Flags().Bool('u', "convert to upper case")
	lower := cmd.Flags().Bool('l', "convert to lower case")
	title := cmd.Flags().Bool('t', "convert to title case")

	return cmd.RunE(p, func() error {
		picked := 0
		for _, flag := range []bool{*upper, *lower, *title} {
			if flag {
				picked++
			}
		}
		if picked != 1 {
			return fmt.Errorf("exactly one of -u, -l or -t is required")
		}

		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected at least one string")
		}

		w := p.Stdout()
		for _, arg := range args {
			switch {
			case *upper:
				fmt.Fprintln(w, strings.ToUpper(arg))
			case *lower:
				fmt.Fprintln(w, strings.ToLower(arg))
			default:
				fmt.Fprintln(w, titleCase(arg))
			}
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Strcase

func init() {
	mustRegister(Drill{
		Name:  "strcase",
		Topic: "strings",
		Short: "Case conversion three ways.",
		Day:   2,
		Proc:  Strcase,
	})
}
