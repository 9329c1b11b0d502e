package drills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestFizzbuzz(t *testing.T) {
	cases := goldenTestSuite{
		"to-fifteen": {Args: []string{"fizzbuzz", "15"}},
	}

	cases.Run(t, Fizzbuzz)
}

func TestFizzbuzz_badArg(t *testing.T) {
	for _, arg := range []string{"0", "banana"} {
		t.Run(arg, func(t *testing.T) {
			cmd := sandboxtest.Command(Fizzbuzz, "fizzbuzz", arg)
			out, err := cmd.CombinedOutput()

			assert.Nil(t, err)
			assert.Equal(t, 1, cmd.ExitStatus, "exit code")
			assert.Contains(t, string(out), "N must be a positive integer")
		})
	}
}

func TestFizzbuzz_defaultsToHundred(t *testing.T) {
	cmd := sandboxtest.Command(Fizzbuzz, "fizzbuzz")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Contains(t, string(out), "Buzz\n") // 100 is a multiple of 5.
}
