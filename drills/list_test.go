package drills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestList(t *testing.T) {
	cmd := sandboxtest.Command(List, "drills")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")

	got := string(out)
	assert.Contains(t, got, "NAME")
	for _, d := range All() {
		assert.Contains(t, got, d.Name)
	}
}

func TestList_topicFilter(t *testing.T) {
	cmd := sandboxtest.Command(List, "drills", "--topic", "files")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")

	got := string(out)
	assert.Contains(t, got, "permscan")
	assert.Contains(t, got, "filetype")
	assert.NotContains(t, got, "fizzbuzz")

	// Header plus only the files drills.
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Len(t, lines, 1+len(ByTopic()["files"]))
}
