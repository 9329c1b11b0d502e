package drills

import (
	"fmt"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Envdump prints the environment, or the named variables only, the shell
// variables exercise.
func Envdump(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "envdump [NAME]...",
		Short: "Print environment variables.",

		NeverBail: true,
	}

	return cmd.Run(p, func() int {
		w := p.Stdout()

		args := cmd.Flags().Args()
		if len(args) == 0 {
			for _, kv := range p.Environ() {
				fmt.Fprintln(w, kv)
			}
			return 0
		}

		exitCode := 0
		for _, name := range args {
			value, ok := p.LookupEnv(name)
			if !ok {
				fmt.Fprintf(w, "%s is unset\n", name)
				exitCode = 1
				continue
			}
			fmt.Fprintf(w, "%s=%s\n", name, value)
		}
		return exitCode
	})
}

var _ sandbox.ProcessFunc = Envdump

func init() {
	mustRegister(Drill{
		Name:  "envdump",
		Topic: "variables",
		Short: "Environment variable inspector.",
		Day:   1,
		Proc:  Envdump,
	})
}
