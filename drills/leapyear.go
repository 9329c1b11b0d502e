package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

func isLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// Leapyear checks the Gregorian leap year rules for the given year, or the
// current year when no argument is given.
func Leapyear(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "leapyear [YEAR]",
		Short: "Report whether a year is a leap year.",
	}

	return cmd.RunE(p, func() error {
		year := p.Now().Year()
		if args := cmd.Flags().Args(); len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				return fmt.Errorf("YEAR must be a positive integer, got %q", args[0])
			}
			year = parsed
		}

		if isLeapYear(year) {
			fmt.Fprintf(p.Stdout(), "%d is a leap year\n", year)
		} else {
			fmt.Fprintf(p.Stdout(), "%d is not a leap year\n", year)
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Leapyear

func init() {
	mustRegister(Drill{
		Name:  "leapyear",
		Topic: "conditionals",
		Short: "Leap year rules as nested conditionals.",
		Day:   3,
		Proc:  Leapyear,
	})
}
