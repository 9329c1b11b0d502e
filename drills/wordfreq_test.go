package drills

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestWordfreq_stdin(t *testing.T) {
	cmd := sandboxtest.Command(Wordfreq, "wordfreq")
	cmd.Stdin = strings.NewReader("The cat and the dog and the bird.")

	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t,
		"      3 the\n"+
			"      2 and\n"+
			"      1 bird\n"+
			"      1 cat\n"+
			"      1 dog\n",
		string(out))
}

func TestWordfreq_top(t *testing.T) {
	cmd := sandboxtest.Command(Wordfreq, "wordfreq", "-n", "2")
	cmd.Stdin = strings.NewReader("a a a b b c")

	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t, "      3 a\n      2 b\n", string(out))
}

func TestWordfreq_files(t *testing.T) {
	cmd := sandboxtest.Command(Wordfreq, "wordfreq", "/a.txt", "/b.txt")
	assert.Nil(t, afero.WriteFile(cmd.FS, "/a.txt", []byte("go go"), 0644))
	assert.Nil(t, afero.WriteFile(cmd.FS, "/b.txt", []byte("go stop"), 0644))

	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t, "      3 go\n      1 stop\n", string(out))
}

func TestWordfreq_missingFile(t *testing.T) {
	cmd := sandboxtest.Command(Wordfreq, "wordfreq", "/nope.txt")
	_, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
}
