package drills

import (
	"errors"
	"fmt"
	"path"
	"sort"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// Permscan partitions the regular files of a directory into those the
// student can write to and those they can't. It is the course's flagship
// example of argument validation plus file test operators.
func Permscan(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "permscan DIRECTORY",
		Short: "List which regular files in a directory are writable and which are not.",
	}

	var cp ColorPrinter
	cp.Init(cmd.Flags(), p)

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) != 1 || args[0] == "" {
			return errors.New("expected exactly one directory argument")
		}
		dir := args[0]

		stat, err := p.Stat(dir)
		switch {
		case err != nil:
			return fmt.Errorf("%s: %w", dir, err)
		case !stat.IsDir():
			return fmt.Errorf("%s: not a directory", dir)
		}

		fd, err := p.Open(dir)
		if err != nil {
			return err
		}
		defer fd.Close()

		entries, err := fd.Readdir(-1)
		if err != nil {
			return err
		}

		var writable, readOnly []string
		for _, entry := range entries {
			// Only regular files count; directories and symlinks are
			// excluded from both lists.
			if !entry.Mode().IsRegular() {
				continue
			}

			name := path.Join(dir, entry.Name())
			if entry.Mode().Perm()&0200 != 0 {
				writable = append(writable, name)
			} else {
				readOnly = append(readOnly, name)
			}
		}
		sort.Strings(writable)
		sort.Strings(readOnly)

		w := p.Stdout()
		fmt.Fprintln(w, cp.Sprintf(ColorBoldGreen, "writable:"))
		for _, name := range writable {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintln(w, cp.Sprintf(ColorBoldRed, "read-only:"))
		for _, name := range readOnly {
			fmt.Fprintf(w, "  %s\n", name)
		}

		return nil
	})
}

var _ sandbox.ProcessFunc = Permscan

func init() {
	mustRegister(Drill{
		Name:  "permscan",
		Topic: "files",
		Short: "Partition a directory's regular files by writability.",
		Day:   4,
		Proc:  Permscan,
	})
}
