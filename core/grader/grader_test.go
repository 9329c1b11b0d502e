package grader

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

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0755))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "greet.yaml", `
name: greet
description: Say hello.
cases:
  - name: default greeting
    want_stdout: "Hello, world!"
  - name: greets argument
    args: sam pat
    want_stdout: |
      Hello, sam!
      Hello, pat!
`)

	exercise, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "greet", exercise.Name)
	require.Len(t, exercise.Cases, 2)
	assert.Equal(t, "sam pat", exercise.Cases[1].Args)
}

func TestLoad_invalid(t *testing.T) {
	cases := map[string]string{
		"missing-name":  "cases:\n  - name: x\n",
		"no-cases":      "name: empty\n",
		"unnamed-case":  "name: x\ncases:\n  - want_status: 1\n",
		"unknown-field": "name: x\nbogus: true\ncases:\n  - name: y\n",
	}

	for tn, body := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := Load(writeFile(t, "exercise.yaml", body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load("/no/such/exercise.yaml")
	assert.Error(t, err)
}

func TestGrade(t *testing.T) {
	script := writeFile(t, "greet.sh", `
if [ $# -eq 0 ]; then
	echo "Hello, world!"
	exit 0
fi
for name in "$@"; do
	echo "Hello, $name!"
done
`)

	exercise := &Exercise{
		Name: "greet",
		Cases: []Case{
			{Name: "default", WantStdout: "Hello, world!"},
			{Name: "args", Args: "sam pat", WantStdout: "Hello, sam!\nHello, pat!"},
			{Name: "wrong-output", WantStdout: "Goodbye!"},
			{Name: "wrong-status", WantStatus: 3},
		},
	}

	results, err := exercise.Grade(context.Background(), script)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.True(t, results[0].Pass)
	assert.True(t, results[1].Pass)

	assert.False(t, results[2].Pass)
	assert.Contains(t, results[2].Reason, "stdout mismatch")

	assert.False(t, results[3].Pass)
	assert.Contains(t, results[3].Reason, "exit status 0, want 3")
}

func TestGrade_setup(t *testing.T) {
	// The script counts files in its working directory; setup provides them.
	script := writeFile(t, "count.sh", `ls | wc -l | tr -d ' '`+"\n")

	exercise := &Exercise{
		Name: "count",
		Cases: []Case{
			{
				Name:       "two files",
				Setup:      []string{"touch a.txt", "touch b.txt"},
				WantStdout: "2",
			},
		},
	}

	results, err := exercise.Grade(context.Background(), script)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Pass, results[0].Reason)
}

func TestGrade_stdin(t *testing.T) {
	script := writeFile(t, "shout.sh", `read line; echo "$line!"`+"\n")

	exercise := &Exercise{
		Name: "shout",
		Cases: []Case{
			{Name: "shouts", Stdin: "hey\n", WantStdout: "hey!"},
		},
	}

	results, err := exercise.Grade(context.Background(), script)
	require.NoError(t, err)
	assert.True(t, results[0].Pass, results[0].Reason)
}

func TestGrade_exactComparison(t *testing.T) {
	script := writeFile(t, "pad.sh", `printf 'done\n\n'`+"\n")

	exercise := &Exercise{
		Name: "pad",
		Cases: []Case{
			{Name: "trimmed", WantStdout: "done"},
			{Name: "exact", WantStdout: "done\n", Exact: true},
		},
	}

	results, err := exercise.Grade(context.Background(), script)
	require.NoError(t, err)

	assert.True(t, results[0].Pass, results[0].Reason)
	assert.False(t, results[1].Pass, "trailing newline must matter under exact")
}

func TestGrade_brokenSetupIsGraderError(t *testing.T) {
	script := writeFile(t, "x.sh", "echo hi\n")

	exercise := &Exercise{
		Name: "broken",
		Cases: []Case{
			{Name: "bad setup", Setup: []string{"exit 9"}},
		},
	}

	_, err := exercise.Grade(context.Background(), script)
	assert.Error(t, err)
}

func TestGrade_unparsableScriptFailsCase(t *testing.T) {
	script := writeFile(t, "broken.sh", "if true; then\n")

	exercise := &Exercise{
		Name:  "broken",
		Cases: []Case{{Name: "parse"}},
	}

	results, err := exercise.Grade(context.Background(), script)
	require.NoError(t, err)
	assert.False(t, results[0].Pass)
}

func TestReport(t *testing.T) {
	results := []Result{
		{Case: "first", Pass: true},
		{Case: "second", Pass: false, Reason: "exit status 1, want 0"},
	}

	var buf bytes.Buffer
	allPassed := Report(&buf, "demo", results, false)

	assert.False(t, allPassed)
	out := buf.String()
	assert.Contains(t, out, "PASS first")
	assert.Contains(t, out, "FAIL second")
	assert.Contains(t, out, "     exit status 1, want 0")
	assert.True(t, strings.HasSuffix(out, "demo: 1/2 cases passed\n"))
}

func TestReport_allPassed(t *testing.T) {
	var buf bytes.Buffer
	allPassed := Report(&buf, "demo", []Result{{Case: "only", Pass: true}}, false)

	assert.True(t, allPassed)
	assert.Contains(t, buf.String(), "demo: 1/1 cases passed")
}
