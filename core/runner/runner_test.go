package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0755))
	return path
}

func TestRunFile(t *testing.T) {
	path := writeScript(t, "echo \"hello $1\"\n")

	var out bytes.Buffer
	status, err := RunFile(context.Background(), path, &Options{
		Params: []string{"world"},
		Stdout: &out,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "hello world\n", out.String())
}

func TestRunFile_exitStatus(t *testing.T) {
	path := writeScript(t, "exit 3\n")

	status, err := RunFile(context.Background(), path, &Options{})

	require.NoError(t, err)
	assert.Equal(t, 3, status)
}

func TestRunFile_loopsAndConditionals(t *testing.T) {
	path := writeScript(t, `
total=0
for n in 1 2 3 4; do
	if [ $((n % 2)) -eq 0 ]; then
		total=$((total + n))
	fi
done
echo "$total"
`)

	var out bytes.Buffer
	status, err := RunFile(context.Background(), path, &Options{Stdout: &out})

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "6\n", out.String())
}

func TestRunFile_missing(t *testing.T) {
	status, err := RunFile(context.Background(), "/no/such/script.sh", &Options{})

	assert.Error(t, err)
	assert.Equal(t, 1, status)
}

func TestRunFile_nilOptions(t *testing.T) {
	_, err := RunFile(context.Background(), "x.sh", nil)
	assert.ErrorIs(t, err, ErrNilOptions)
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer
	status, err := RunCommand(context.Background(), `x=5; echo $((x * 2))`, &Options{
		Stdout: &out,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "10\n", out.String())
}

func TestRunCommand_stdin(t *testing.T) {
	var out bytes.Buffer
	status, err := RunCommand(context.Background(), `read name; echo "hi $name"`, &Options{
		Stdin:  strings.NewReader("sam\n"),
		Stdout: &out,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "hi sam\n", out.String())
}

func TestRunCommand_env(t *testing.T) {
	var out bytes.Buffer
	status, err := RunCommand(context.Background(), `echo "$GREETING"`, &Options{
		Env:    []string{"GREETING=howdy"},
		Stdout: &out,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "howdy\n", out.String())
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("ok.sh", strings.NewReader("echo hi\n")))

	err := Check("bad.sh", strings.NewReader("if true; then\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.sh")
}

func TestFormat(t *testing.T) {
	got, err := Format([]byte("echo   hi\n"), "x.sh", 0)
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", string(got))
}

func TestFormat_indent(t *testing.T) {
	got, err := Format([]byte("if true; then\necho hi\nfi\n"), "x.sh", 2)
	require.NoError(t, err)
	assert.Equal(t, "if true; then\n  echo hi\nfi\n", string(got))
}

func TestFormat_keepsComments(t *testing.T) {
	src := "# leading comment\necho hi\n"
	got, err := Format([]byte(src), "x.sh", 0)
	require.NoError(t, err)
	assert.Equal(t, src, string(got))
}

func TestFormat_badSyntax(t *testing.T) {
	_, err := Format([]byte("while do done"), "x.sh", 0)
	assert.Error(t, err)
}
