// Package runner executes, validates and formats real shell script files
// using the mvdan.cc/sh toolchain. This is how the course's example .sh
// files run without depending on a system shell.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ErrNilOptions is returned when nil options are given.
var ErrNilOptions = errors.New("runner: nil options given")

// Options configures a script or command run.
type Options struct {
	// Dir is the working directory, "" for the current one.
	Dir string
	// Env is the environment in "key=value" form; nil inherits the host
	// environment.
	Env []string
	// Params become the script's positional parameters ($1...).
	Params []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RunFile executes a shell script file and returns its exit status.
func RunFile(ctx context.Context, path string, opts *Options) (int, error) {
	if opts == nil {
		return 1, ErrNilOptions
	}

	fd, err := os.Open(path)
	if err != nil {
		return 1, err
	}
	defer fd.Close()

	file, err := parser().Parse(fd, path)
	if err != nil {
		return 1, err
	}

	return run(ctx, file, opts)
}

// RunCommand executes a command string the way `sh -c` would.
func RunCommand(ctx context.Context, command string, opts *Options) (int, error) {
	if opts == nil {
		return 1, ErrNilOptions
	}

	file, err := parser().Parse(strings.NewReader(command), "")
	if err != nil {
		return 1, err
	}

	return run(ctx, file, opts)
}

func run(ctx context.Context, file *syntax.File, opts *Options) (int, error) {
	environ := opts.Env
	if environ == nil {
		environ = os.Environ()
	}

	runnerOpts := []interp.RunnerOption{
		interp.Dir(opts.Dir),
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(opts.Stdin, opts.Stdout, opts.Stderr),
	}
	if len(opts.Params) > 0 {
		runnerOpts = append(runnerOpts, interp.Params(opts.Params...))
	}

	r, err := interp.New(runnerOpts...)
	if err != nil {
		return 1, err
	}

	if err := r.Run(ctx, file); err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}
		return 1, err
	}
	return 0, nil
}

func parser() *syntax.Parser {
	return syntax.NewParser(syntax.Variant(syntax.LangBash), syntax.KeepComments(true))
}

// Check parses the script and reports the first syntax error, or nil. The
// error message carries the file name, line and column.
func Check(name string, src io.Reader) error {
	if _, err := parser().Parse(src, name); err != nil {
		return err
	}
	return nil
}

// Format reformats a script canonically, with the given indent width.
// Zero indent means tabs.
func Format(src []byte, name string, indent int) ([]byte, error) {
	file, err := parser().Parse(bytes.NewReader(src), name)
	if err != nil {
		return nil, err
	}

	printer := syntax.NewPrinter(syntax.Indent(uint(indent)))
	var buf bytes.Buffer
	if err := printer.Print(&buf, file); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return buf.Bytes(), nil
}
