package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Tempconv converts between Celsius and Fahrenheit, the flag-driven
// arithmetic exercise.
func Tempconv(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "tempconv -c|-f VALUE...",
		Short: "Convert temperatures between Celsius and Fahrenheit.",
	}

	fromCelsius := cmd.Flags().Bool('c', "treat VALUE as Celsius, print Fahrenheit")
	fromFahrenheit := cmd.Flags().Bool('f', "treat VALUE as Fahrenheit, print Celsius")

	return cmd.RunE(p, func() error {
		if *fromCelsius == *fromFahrenheit {
			return fmt.Errorf("exactly one of -c or -f is required")
		}

		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected at least one VALUE")
		}

		w := p.Stdout()
		for _, arg := range args {
			value, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", arg)
			}

			if *fromCelsius {
				fmt.Fprintf(w, "%.1f°C = %.1f°F\n", value, value*9/5+32)
			} else {
				fmt.Fprintf(w, "%.1f°F = %.1f°C\n", value, (value-32)*5/9)
			}
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Tempconv

func init() {
	mustRegister(Drill{
		Name:  "tempconv",
		Topic: "arithmetic",
		Short: "Celsius and Fahrenheit conversion.",
		Day:   5,
		Proc:  Tempconv,
	})
}
