package drills

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// lstat classifies a link itself rather than its target, on filesystems
// that can tell the difference.
func lstat(p sandbox.Proc, name string) (os.FileInfo, error) {
	if lstater, ok := p.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return p.Stat(name)
}

// Filetype mirrors the shell's file test operators: for each path it reports
// whether it is a regular file, a directory, a symlink, or missing. Missing
// paths turn the exit status nonzero, matching `test -e`.
func Filetype(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "filetype PATH...",
		Short: "Classify each path like the shell's file test operators.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintf(p.Stderr(), "%s: expected at least one path\n", p.Args()[0])
			return 1
		}

		w := p.Stdout()
		exitCode := 0
		for _, arg := range args {
			stat, err := lstat(p, arg)
			switch {
			case err != nil:
				fmt.Fprintf(w, "%s: missing\n", arg)
				exitCode = 1
			case stat.Mode()&os.ModeSymlink != 0:
				fmt.Fprintf(w, "%s: symbolic link\n", arg)
			case stat.IsDir():
				fmt.Fprintf(w, "%s: directory\n", arg)
			case stat.Size() == 0:
				fmt.Fprintf(w, "%s: empty regular file\n", arg)
			default:
				fmt.Fprintf(w, "%s: regular file (%s)\n", arg, BytesToHuman(stat.Size()))
			}
		}
		return exitCode
	})
}

var _ sandbox.ProcessFunc = Filetype

func init() {
	mustRegister(Drill{
		Name:  "filetype",
		Topic: "files",
		Short: "File test operators in action.",
		Day:   4,
		Proc:  Filetype,
	})
}
