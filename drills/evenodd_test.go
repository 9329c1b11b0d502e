package drills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestEvenodd(t *testing.T) {
	cmd := sandboxtest.Command(Evenodd, "evenodd", "2", "7", "0")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t, "2 is even\n7 is odd\n0 is even\n", string(out))
}

func TestEvenodd_badArgs(t *testing.T) {
	cmd := sandboxtest.Command(Evenodd, "evenodd", "two")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	assert.Equal(t, "evenodd: not an integer: \"two\"\n", string(out))
}
