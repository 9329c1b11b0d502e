// Package sandboxtest runs drills against a deterministic sandbox: an empty
// in-memory filesystem, a fixed clock and a fixed identity, so output is
// stable enough for golden files.
package sandboxtest

import (
	"bytes"
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// FixedTime is the deterministic session clock: Go's reference timestamp
// with a different value in each position.
var FixedTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// SingleResolver resolves every name to the same drill.
func SingleResolver(process sandbox.ProcessFunc) sandbox.Resolver {
	return func(name string) sandbox.ProcessFunc {
		return process
	}
}

// Cmd runs one drill, mirroring the shape of exec.Cmd.
type Cmd struct {
	// Process is the drill under test.
	Process sandbox.ProcessFunc
	// Argv holds the process arguments; Argv[0] is the drill name.
	Argv []string
	// Dir, if non-empty, is the working directory for the drill.
	Dir string
	// Env, if non-nil, is the environment in "key=value" form.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// FS is the sandbox filesystem. Seed it before calling Run.
	FS afero.Fs

	// PTY, if set, is the terminal the drill believes it has.
	PTY sandbox.PTY

	// ExitStatus holds the drill's exit status after Run.
	ExitStatus int

	// Setup, if set, runs against the started process before execution.
	Setup func(p sandbox.Proc) error
}

// Command builds a Cmd for the drill with the given argv.
func Command(process sandbox.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      afero.NewMemMapFs(),
		Stdin:   &bytes.Buffer{},
	}
}

// CombinedOutput runs the drill and returns its combined stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the drill and waits for it to complete, recording ExitStatus.
func (c *Cmd) Run() error {
	session := sandbox.NewSession(
		c.FS,
		SingleResolver(c.Process),
		sandbox.Identity{User: "student", Hostname: "sandbox"},
		func() time.Time { return FixedTime },
	)
	session.SetPTY(c.PTY)

	stdout := c.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	stdin := c.Stdin
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}

	proc, err := session.InitProc().StartProcess(c.Argv[0], c.Argv, &sandbox.ProcAttr{
		Dir:   c.Dir,
		Env:   c.Env,
		Files: sandbox.NewStreamIO(stdin, stdout, stderr),
	})
	if err != nil {
		return err
	}

	if c.Setup != nil {
		if err := c.Setup(proc); err != nil {
			return err
		}
	}

	c.ExitStatus = proc.Run()
	return nil
}
