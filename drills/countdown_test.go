package drills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestCountdown(t *testing.T) {
	cases := goldenTestSuite{
		"from-three": {Args: []string{"countdown", "--from", "3"}},
	}

	cases.Run(t, Countdown)
}

func TestCountdown_fromZero(t *testing.T) {
	cmd := sandboxtest.Command(Countdown, "countdown", "--from", "0")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	assert.Contains(t, string(out), "--from must be positive")
}
