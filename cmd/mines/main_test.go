package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code           int
	stdout, stderr string
}

func runWith(t *testing.T, input string, environ []string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"mines"}, args...), strings.NewReader(input), &stdout, &stderr, environ)
	return result{code, stdout.String(), stderr.String()}
}

func TestHelpAndVersion(t *testing.T) {
	for _, args := range [][]string{{"-help"}, {"--help"}, {"-h"}, {"-?"}, {"help"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := runWith(t, "", nil, args...)
			assert.Equal(t, 0, res.code)
			assert.True(t, strings.HasPrefix(res.stdout, "Usage: mines [options]\n"))
			assert.Contains(t, res.stdout, "-width <number>    Set the board width to <number> (between 1 and 26.)")
			assert.Contains(t, res.stdout, "Commands:\n")
		})
	}

	for _, args := range [][]string{{"-version"}, {"-v"}} {
		res := runWith(t, "", nil, args...)
		assert.Equal(t, 0, res.code)
		assert.Equal(t, "mines 0.4.7\n", res.stdout)
	}
}

func TestBadArguments(t *testing.T) {
	tests := []struct {
		args   []string
		stderr string
	}{
		{[]string{"-width", "27"}, "mines: width must be between 1 and 26\n"},
		{[]string{"-height", "0"}, "mines: height must be between 1 and 30\n"},
		{[]string{"-mines", "781"}, "mines: mines must be between 0 and 780\n"},
		{[]string{"-width", "abc"}, "mines: width must be between 1 and 26\n"},
		{[]string{"-height", "40rows"}, "mines: height must be between 1 and 30\n"},
		{[]string{"-bogus"}, "mines: flag provided but not defined: -bogus\n"},
		{[]string{"-width"}, "mines: flag needs an argument: -width\n"},
		{[]string{"extra"}, "mines: Unexpected argument: extra\nUsage: mines [options]\n"},
	}

	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			res := runWith(t, "", nil, test.args...)
			assert.Equal(t, 1, res.code)
			assert.True(t, strings.HasPrefix(res.stderr, test.stderr), "stderr = %q", res.stderr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestPlayFromFlags(t *testing.T) {
	res := runWith(t, "B2\nq\ny\n", nil,
		"-width", "3", "-height", "3", "-mines", "1", "-separator", "==\n", "-seed", "5")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "==\n     A B C\n"))
	assert.Contains(t, res.stdout, "Are you sure you want to quit? [yN] ")
	assert.Contains(t, res.stdout, "Game quit.\n")
	assert.True(t, strings.HasSuffix(res.stdout, "Score: 0\n"))
}

func TestMinesClampedToBoard(t *testing.T) {
	res := runWith(t, "fA1\n", nil, "-width", "1", "-height", "1", "-mines", "780", "-separator", "")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Flags: 0/1\n")
	assert.Contains(t, res.stdout, "All mines found! You win!\n")
	assert.True(t, strings.HasSuffix(res.stdout, "Score: 1000\n"))
}

func TestOptionLayers(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mines.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("width: 4\nheight: 4\nmines: 2\nseparator: \"\"\n"), 0o600))

	c := newCLI("mines")
	require.NoError(t, c.Parse([]string{"-c", configPath, "-height", "6"}))
	opts, err := c.Options([]string{"MINES_WIDTH=5", "MINES_HEIGHT=9", "MINES_SEED=3"})
	require.NoError(t, err)

	assert.Equal(t, 5, opts.Width)
	assert.Equal(t, 6, opts.Height)
	assert.Equal(t, 2, opts.Mines)
	assert.Equal(t, uint64(3), opts.Seed)
	assert.Equal(t, "", opts.Separator)
}

func TestNumberFlagsReadLeadingDigits(t *testing.T) {
	c := newCLI("mines")
	require.NoError(t, c.Parse([]string{"-width", "12x", "-height", " 7", "-mines", "-0"}))
	opts, err := c.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, 12, opts.Width)
	assert.Equal(t, 7, opts.Height)
	assert.Equal(t, 0, opts.Mines)
}

func TestMissingConfigFile(t *testing.T) {
	res := runWith(t, "", nil, "-config", filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unable to read config")
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mines.log")
	res := runWith(t, "q\n", []string{"MINES_LOG_FILE=" + logPath, "MINES_VERBOSE=1"},
		"-width", "2", "-height", "2", "-mines", "1")
	require.Equal(t, 0, res.code)
	assert.Empty(t, res.stderr)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "new game")
	assert.Contains(t, string(b), "session finished")
}
