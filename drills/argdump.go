package drills

import (
	"fmt"
	"strings"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Argdump shows how positional parameters arrive in a script: the program
// name, the argument count and each argument by index.
func Argdump(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "argdump [ARG]...",
		Short: "Inspect positional parameters the way $0, $# and $@ do.",

		// Never bail, any argument is fair game here.
		NeverBail: true,
	}

	return cmd.Run(p, func() int {
		w := p.Stdout()
		args := cmd.Flags().Args()

		fmt.Fprintf(w, "$0 = %s\n", p.Args()[0])
		fmt.Fprintf(w, "$# = %d\n", len(args))
		fmt.Fprintf(w, "$@ = %s\n", strings.Join(args, " "))
		for i, arg := range args {
			fmt.Fprintf(w, "$%d = %s\n", i+1, arg)
		}
		return 0
	})
}

var _ sandbox.ProcessFunc = Argdump

func init() {
	mustRegister(Drill{
		Name:  "argdump",
		Topic: "arguments",
		Short: "Positional parameter inspector.",
		Day:   1,
		Proc:  Argdump,
	})
}
