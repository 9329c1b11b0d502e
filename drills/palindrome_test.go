package drills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestPalindrome(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		wantOut    string
		wantStatus int
	}{
		{
			name:       "simple",
			args:       []string{"racecar"},
			wantOut:    "racecar: palindrome\n",
			wantStatus: 0,
		},
		{
			name:       "normalized",
			args:       []string{"A man, a plan, a canal: Panama"},
			wantOut:    "A man, a plan, a canal: Panama: palindrome\n",
			wantStatus: 0,
		},
		{
			name:       "strict-rejects-case",
			args:       []string{"-s", "Racecar"},
			wantOut:    "Racecar: not a palindrome\n",
			wantStatus: 1,
		},
		{
			name:       "mixed-verdicts",
			args:       []string{"noon", "moon"},
			wantOut:    "noon: palindrome\nmoon: not a palindrome\n",
			wantStatus: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := sandboxtest.Command(Palindrome, "palindrome", tc.args...)
			out, err := cmd.CombinedOutput()

			assert.Nil(t, err)
			assert.Equal(t, tc.wantStatus, cmd.ExitStatus, "exit code")
			assert.Equal(t, tc.wantOut, string(out))
		})
	}
}

func TestPalindrome_noArgs(t *testing.T) {
	cmd := sandboxtest.Command(Palindrome, "palindrome")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	assert.Equal(t, "palindrome: expected at least one string\n", string(out))
}
