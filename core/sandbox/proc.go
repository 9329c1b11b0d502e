package sandbox

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"
)

// Clock produces the session's current time. Tests substitute a fixed one.
type Clock func() time.Time

// Identity is who and where the student appears to be inside the sandbox.
type Identity struct {
	User     string
	Hostname string
}

// Session is the shared state behind every process in one sitting: the
// filesystem, the drill resolver, identity, clock and PID counter.
type Session struct {
	fs       FS
	resolver Resolver
	ident    Identity
	clock    Clock
	pty      PTY
	lastPID  int32
	started  time.Time
}

// NewSession creates a session over the given filesystem.
func NewSession(fs FS, resolver Resolver, ident Identity, clock Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		fs:       fs,
		resolver: resolver,
		ident:    ident,
		clock:    clock,
		started:  clock(),
	}
}

// SetPTY records the attached terminal.
func (s *Session) SetPTY(pty PTY) { s.pty = pty }

// Started returns when the session began.
func (s *Session) Started() time.Time { return s.started }

func (s *Session) nextPID() int {
	return int(atomic.AddInt32(&s.lastPID, 1))
}

// InitProc returns the root process of the session. It does nothing itself;
// real work happens in processes it starts.
func (s *Session) InitProc() *Process {
	out := &Process{
		session: s,
		Env:     NewMapEnv(),
		io:      NewNullIO(),
		name:    "init",
		argv:    []string{"init"},
		dir:     "/",
		exec:    func(Proc) int { return 0 },
	}
	out.FS = NewCwdFs(s.fs, out.Getwd)
	return out
}

// ProcAttr holds attributes that StartProcess applies to a new process.
type ProcAttr struct {
	// If Dir is non-empty, the child changes into the directory before
	// the process starts.
	Dir string
	// If Env is non-nil it gives the environment in "key=value" form,
	// otherwise the parent's environment is copied.
	Env []string
	// Files specifies the standard streams of the new process. Nil gets
	// null IO.
	Files IO
}

// Process is a single drill invocation. It implements Proc.
type Process struct {
	Env
	FS

	session *Session
	io      IO

	name string
	argv []string
	pid  int
	dir  string
	exec ProcessFunc
}

var _ Proc = (*Process)(nil)

// Args implements Proc.Args.
func (p *Process) Args() []string { return p.argv }

// Getpid implements Proc.Getpid.
func (p *Process) Getpid() int { return p.pid }

// LstatIfPossible implements afero.Lstater. Embedding only promotes the FS
// interface's own methods, so the lstat capability needs forwarding by hand.
func (p *Process) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if lstater, ok := p.FS.(afero.Lstater); ok {
		return lstater.LstatIfPossible(name)
	}
	info, err := p.Stat(name)
	return info, false, err
}

var _ afero.Lstater = (*Process)(nil)

// Getwd implements Proc.Getwd.
func (p *Process) Getwd() string { return p.dir }

// Chdir implements Proc.Chdir.
func (p *Process) Chdir(dir string) error {
	if !path.IsAbs(dir) {
		dir = path.Clean(path.Join(p.dir, dir))
	}

	stat, err := p.Stat(dir)
	switch {
	case err != nil:
		return fmt.Errorf("%s: %w", dir, err)
	case !stat.IsDir():
		return fmt.Errorf("%s: not a directory", dir)
	default:
		p.dir = dir
		return nil
	}
}

// User implements Proc.User.
func (p *Process) User() string { return p.session.ident.User }

// Hostname implements Proc.Hostname.
func (p *Process) Hostname() string { return p.session.ident.Hostname }

// Now implements Proc.Now.
func (p *Process) Now() time.Time { return p.session.clock() }

// GetPTY implements Proc.GetPTY.
func (p *Process) GetPTY() PTY { return p.session.pty }

// Stdin implements IO.Stdin.
func (p *Process) Stdin() io.ReadCloser { return p.io.Stdin() }

// Stdout implements IO.Stdout.
func (p *Process) Stdout() io.WriteCloser { return p.io.Stdout() }

// Stderr implements IO.Stderr.
func (p *Process) Stderr() io.WriteCloser { return p.io.Stderr() }

// StartProcess implements Proc.StartProcess.
func (p *Process) StartProcess(name string, argv []string, attr *ProcAttr) (*Process, error) {
	exec := p.session.resolver(name)
	if exec == nil {
		return nil, fmt.Errorf("%s: command not found", name)
	}

	if attr == nil {
		attr = &ProcAttr{}
	}
	if argv == nil {
		argv = []string{name}
	}

	var env Env
	if attr.Env == nil {
		env = NewMapEnvFromList(p.Environ())
	} else {
		env = NewMapEnvFromList(attr.Env)
	}

	out := &Process{
		session: p.session,
		Env:     env,
		name:    name,
		argv:    argv,
		pid:     p.session.nextPID(),
		dir:     p.dir,
		exec:    exec,
	}
	out.FS = NewCwdFs(p.session.fs, out.Getwd)

	if attr.Files == nil {
		out.io = NewNullIO()
	} else {
		out.io = attr.Files
	}

	if attr.Dir != "" {
		if err := out.Chdir(attr.Dir); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Run executes the process and returns its exit status. A panicking drill is
// contained and reported as status 2 so a buggy example never takes down the
// session.
func (p *Process) Run() (status int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(p.io.Stderr(), "%s: internal error: %v\n", p.name, r)
			status = 2
		}
	}()

	return p.exec(p)
}
