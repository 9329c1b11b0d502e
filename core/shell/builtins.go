package shell

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Builtin is a command the shell runs in-process rather than resolving to a
// drill.
type Builtin struct {
	Short string
	Main  func(s *Shell, args []string) int
}

// AllBuiltins holds the shell's builtin commands.
var AllBuiltins = map[string]Builtin{
	"cd": {
		Short: "Change the working directory.",
		Main: func(s *Shell, args []string) int {
			dir := s.Proc.Getenv(EnvHome)
			if len(args) > 1 {
				dir = args[1]
			}
			if err := s.Proc.Chdir(dir); err != nil {
				fmt.Fprintf(s.Proc.Stderr(), "cd: %v\n", err)
				return 1
			}
			s.Proc.Setenv(EnvPWD, s.Proc.Getwd())
			return 0
		},
	},

	"pwd": {
		Short: "Print the working directory.",
		Main: func(s *Shell, args []string) int {
			fmt.Fprintln(s.Proc.Stdout(), s.Proc.Getwd())
			return 0
		},
	},

	"exit": {
		Short: "Exit the practice shell.",
		Main: func(s *Shell, args []string) int {
			s.Quit = true
			if len(args) > 1 {
				if code, err := strconv.Atoi(args[1]); err == nil {
					return code
				}
				fmt.Fprintf(s.Proc.Stderr(), "exit: numeric argument required\n")
				return 2
			}
			return s.lastRet
		},
	},

	"export": {
		Short: "Set environment variables.",
		Main: func(s *Shell, args []string) int {
			for _, arg := range args[1:] {
				key, value, _ := strings.Cut(arg, "=")
				if key == "" {
					fmt.Fprintf(s.Proc.Stderr(), "export: bad assignment %q\n", arg)
					return 1
				}
				s.Proc.Setenv(key, value)
			}
			return 0
		},
	},

	"unset": {
		Short: "Unset environment variables.",
		Main: func(s *Shell, args []string) int {
			for _, arg := range args[1:] {
				s.Proc.Unsetenv(arg)
			}
			return 0
		},
	},

	"env": {
		Short: "Print the environment.",
		Main: func(s *Shell, args []string) int {
			for _, kv := range s.Proc.Environ() {
				fmt.Fprintln(s.Proc.Stdout(), kv)
			}
			return 0
		},
	},

	"history": {
		Short: "Show the lines typed this session.",
		Main: func(s *Shell, args []string) int {
			for i, line := range s.history {
				fmt.Fprintf(s.Proc.Stdout(), "%5d  %s\n", i+1, line)
			}
			return 0
		},
	},

}

// The help builtin refers to AllBuiltins, so it is registered in init to
// avoid an initialization cycle.
func init() {
	AllBuiltins["help"] = Builtin{
		Short: "List the shell builtins.",
		Main: func(s *Shell, args []string) int {
			names := make([]string, 0, len(AllBuiltins))
			for name := range AllBuiltins {
				names = append(names, name)
			}
			sort.Strings(names)

			w := s.Proc.Stdout()
			fmt.Fprintln(w, "Practice shell builtins:")
			for _, name := range names {
				fmt.Fprintf(w, "  %-10s %s\n", name, AllBuiltins[name].Short)
			}
			fmt.Fprintln(w, `Run "drills" to list the course's example programs.`)
			return 0
		},
	}
}
