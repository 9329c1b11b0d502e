// Package sandbox provides the virtual execution environment that drills run
// inside. A drill never touches the host OS directly; it sees a Proc that
// bundles its argv, standard streams, environment, filesystem and working
// directory. The same drill therefore runs unchanged over the real OS, inside
// the interactive practice shell's in-memory filesystem, and under the test
// harness.
package sandbox

import (
	"io"
	"time"

	"github.com/spf13/afero"
)

// FS is the filesystem surface drills see.
type FS = afero.Fs

// PTY describes the terminal a session is attached to, if any.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// Env is the mutable environment of a process.
type Env interface {
	// Setenv sets the value of the environment variable named by the key.
	Setenv(key, value string) error

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// LookupEnv retrieves the value of the environment variable named by the
	// key and reports whether it was present.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the
	// key, or "" if unset.
	Getenv(key string) string

	// ExpandEnv replaces ${var} or $var in the string according to the
	// current environment. Undefined variables expand to "".
	ExpandEnv(s string) string

	// Environ returns a copy of the environment as "key=value" strings.
	Environ() []string
}

// IO is the set of standard streams attached to a process.
type IO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// Proc is the world as seen by a single drill invocation.
type Proc interface {
	Env
	IO
	FS

	// Args holds the command line, including the drill name as Args()[0].
	Args() []string

	// Getpid returns the process ID within the session.
	Getpid() int

	// Getwd returns the working directory. It never fails; a process always
	// has one.
	Getwd() string

	// Chdir changes the working directory, relative paths are resolved
	// against the current one.
	Chdir(dir string) error

	// User returns the name the student is working as.
	User() string

	// Hostname returns the sandbox host name, used in prompts.
	Hostname() string

	// Now returns the session clock's current time. Deterministic under
	// test.
	Now() time.Time

	// GetPTY returns terminal information for layout and color decisions.
	GetPTY() PTY

	// StartProcess resolves and starts a named drill sharing this process's
	// session. Used by the practice shell.
	StartProcess(name string, argv []string, attr *ProcAttr) (*Process, error)
}

// ProcessFunc is a drill entry point: a tiny program that reads its world
// from a Proc and returns an exit status.
type ProcessFunc func(p Proc) int

// Resolver looks up a drill by name. It returns nil if no drill was found.
type Resolver func(name string) ProcessFunc
