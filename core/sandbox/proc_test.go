package sandbox

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(resolver Resolver) *Session {
	return NewSession(
		afero.NewMemMapFs(),
		resolver,
		Identity{User: "student", Hostname: "sandbox"},
		func() time.Time { return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC) },
	)
}

func nopResolver(name string) ProcessFunc {
	return func(p Proc) int { return 0 }
}

func TestSession_pids(t *testing.T) {
	session := testSession(nopResolver)
	init := session.InitProc()
	assert.Equal(t, 0, init.Getpid())

	first, err := init.StartProcess("a", nil, nil)
	require.NoError(t, err)
	second, err := init.StartProcess("b", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Getpid())
	assert.Equal(t, 2, second.Getpid())
}

func TestStartProcess_notFound(t *testing.T) {
	session := testSession(func(string) ProcessFunc { return nil })

	_, err := session.InitProc().StartProcess("missing", nil, nil)

	assert.EqualError(t, err, "missing: command not found")
}

func TestStartProcess_envInheritance(t *testing.T) {
	session := testSession(nopResolver)
	parent := session.InitProc()
	require.NoError(t, parent.Setenv("FOO", "bar"))

	inherited, err := parent.StartProcess("a", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "bar", inherited.Getenv("FOO"))

	// The child environment is a copy, not a reference.
	require.NoError(t, inherited.Setenv("FOO", "changed"))
	assert.Equal(t, "bar", parent.Getenv("FOO"))

	explicit, err := parent.StartProcess("a", nil, &ProcAttr{Env: []string{"ONLY=this"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ONLY=this"}, explicit.Environ())
}

func TestStartProcess_argv(t *testing.T) {
	session := testSession(nopResolver)

	proc, err := session.InitProc().StartProcess("tool", []string{"tool", "-v"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tool", "-v"}, proc.Args())

	// Nil argv defaults to the name.
	proc, err = session.InitProc().StartProcess("tool", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tool"}, proc.Args())
}

func TestProcess_chdir(t *testing.T) {
	session := testSession(nopResolver)
	require.NoError(t, session.fs.MkdirAll("/srv/www", 0755))
	require.NoError(t, afero.WriteFile(session.fs, "/srv/file.txt", []byte("x"), 0644))

	proc, err := session.InitProc().StartProcess("a", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/", proc.Getwd())

	require.NoError(t, proc.Chdir("/srv"))
	assert.Equal(t, "/srv", proc.Getwd())

	// Relative paths resolve against the current directory.
	require.NoError(t, proc.Chdir("www"))
	assert.Equal(t, "/srv/www", proc.Getwd())

	assert.Error(t, proc.Chdir("/nope"))
	assert.Error(t, proc.Chdir("/srv/file.txt"))
	assert.Equal(t, "/srv/www", proc.Getwd(), "failed chdir must not move the process")
}

func TestProcess_relativeFS(t *testing.T) {
	session := testSession(nopResolver)
	require.NoError(t, session.fs.MkdirAll("/srv", 0755))

	proc, err := session.InitProc().StartProcess("a", nil, &ProcAttr{Dir: "/srv"})
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(proc, "notes.txt", []byte("hi"), 0644))

	body, err := afero.ReadFile(session.fs, "/srv/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(body))
}

func TestProcess_runStatus(t *testing.T) {
	session := testSession(func(string) ProcessFunc {
		return func(p Proc) int { return 42 }
	})

	proc, err := session.InitProc().StartProcess("a", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, proc.Run())
}

func TestProcess_runContainsPanics(t *testing.T) {
	session := testSession(func(string) ProcessFunc {
		return func(p Proc) int { panic("boom") }
	})

	stderr := &bytes.Buffer{}
	proc, err := session.InitProc().StartProcess("crashy", nil, &ProcAttr{
		Files: NewStreamIO(&bytes.Buffer{}, &bytes.Buffer{}, stderr),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, proc.Run())
	assert.Equal(t, "crashy: internal error: boom\n", stderr.String())
}

func TestProcess_identityAndClock(t *testing.T) {
	session := testSession(nopResolver)
	proc, err := session.InitProc().StartProcess("a", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "student", proc.User())
	assert.Equal(t, "sandbox", proc.Hostname())
	assert.Equal(t, 2006, proc.Now().Year())
}

func ExampleProcess_StartProcess() {
	session := NewSession(afero.NewMemMapFs(), func(name string) ProcessFunc {
		return func(p Proc) int {
			fmt.Fprintf(p.Stdout(), "hello from %s\n", p.Args()[0])
			return 0
		}
	}, Identity{User: "student", Hostname: "sandbox"}, time.Now)

	out := &bytes.Buffer{}
	proc, _ := session.InitProc().StartProcess("greeter", nil, &ProcAttr{
		Files: NewStreamIO(&bytes.Buffer{}, out, out),
	})
	proc.Run()
	fmt.Print(out.String())

	// Output: hello from greeter
}
