package cmd

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/sandbox"
	"github.com/shelldrill/shelldrill/drills"
)

// hostIdentity maps the real user and host onto the sandbox identity.
func hostIdentity() sandbox.Identity {
	ident := sandbox.Identity{User: "student", Hostname: "localhost"}
	if u, err := user.Current(); err == nil && u.Username != "" {
		ident.User = u.Username
	}
	if h, err := os.Hostname(); err == nil && h != "" {
		ident.Hostname = h
	}
	return ident
}

func hostPTY() sandbox.PTY {
	if !stdoutIsTerminal() {
		return sandbox.PTY{}
	}
	width, height := stdoutSize()
	return sandbox.PTY{
		Width:  width,
		Height: height,
		Term:   os.Getenv("TERM"),
		IsPTY:  true,
	}
}

var runCmd = &cobra.Command{
	Use:   "run DRILL [ARG]...",
	Short: "Run an example program against your real files",
	Long: `Run executes one of the built-in example programs in the current
directory, with your environment and terminal. Flags after the drill name
belong to the drill; try "run DRILL --help".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, ok := drills.Lookup(name); !ok {
			return fmt.Errorf("unknown drill %q, see \"shelldrill drills\"", name)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		session := sandbox.NewSession(afero.NewOsFs(), drills.Resolver, hostIdentity(), time.Now)
		session.SetPTY(hostPTY())

		proc, err := session.InitProc().StartProcess(name, args, &sandbox.ProcAttr{
			Dir:   cwd,
			Env:   os.Environ(),
			Files: sandbox.NewOSIO(),
		})
		if err != nil {
			return err
		}

		status := proc.Run()

		logger, done := openProgress(maybeConfig())
		defer done()
		if err := logger.DrillRun(name, status); err != nil {
			return err
		}

		if status != 0 {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return &exitCodeError{code: status}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}
