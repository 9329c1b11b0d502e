package drills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestFactorial(t *testing.T) {
	cmd := sandboxtest.Command(Factorial, "factorial", "0", "5", "20")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t,
		"0! = 1\n5! = 120\n20! = 2432902008176640000\n",
		string(out))
}

func TestFactorial_overflow(t *testing.T) {
	cmd := sandboxtest.Command(Factorial, "factorial", "21")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	assert.Equal(t, "factorial: 21! overflows, N must be <= 20\n", string(out))
}

func TestFactorial_badArgs(t *testing.T) {
	for _, args := range [][]string{
		{},      // nothing to compute
		{"abc"}, // not a number
	} {
		cmd := sandboxtest.Command(Factorial, "factorial", args...)
		_, err := cmd.CombinedOutput()

		assert.Nil(t, err)
		assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	}
}
