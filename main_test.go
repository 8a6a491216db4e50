package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassthroughArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		lenAtDash int
		expected  []string
	}{
		{
			name:      "no dash",
			args:      []string{"HEAD~10.."},
			lenAtDash: -1,
			expected:  []string{"HEAD~10.."},
		},
		{
			name:      "dash between revs and paths",
			args:      []string{"HEAD~10..", "src/"},
			lenAtDash: 1,
			expected:  []string{"HEAD~10..", "--", "src/"},
		},
		{
			name:      "dash first",
			args:      []string{"src/"},
			lenAtDash: 0,
			expected:  []string{"--", "src/"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := passthroughArgs(test.args, test.lenAtDash)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestCompileFilter(t *testing.T) {
	re, err := compileFilter("include", `\.py$`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("foo.py"))

	re, err = compileFilter("include", "")
	require.NoError(t, err)
	assert.Nil(t, re)

	_, err = compileFilter("exclude", "(")
	assert.Error(t, err)
}

// Argument validation must fail before any git subprocess runs.
func TestInvalidOrderIsUsageError(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"-o", "bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order")
}

func TestInvalidIncludeIsUsageError(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--include", "("})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad include pattern")
}
