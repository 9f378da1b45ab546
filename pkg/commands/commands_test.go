package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WUTILS_CONFIG_PATH", "")

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	code := Execute(cmd)
	return code, out.String(), errOut.String()
}

func TestCalMonth(t *testing.T) {
	code, out, errOut := run(t, NewCal(), "--color=never", "9", "1752")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "   September 1752     ", lines[0])
	assert.Equal(t, "       1  2 14 15 16  ", lines[2])
}

func TestCalYear(t *testing.T) {
	code, out, errOut := run(t, NewCal(), "--color=never", "2024")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", 29)+"2024\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 37)
}

func TestCalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"too many", []string{"1", "2", "3"}, "usage: cal [[month] year]\n"},
		{"year flag with args", []string{"-y", "2024"}, "usage: cal [[month] year]\n"},
		{"not a year", []string{"abc"}, "invalid year \"abc\"\n"},
		{"not a month", []string{"x", "2024"}, "invalid month \"x\"\n"},
		{"year zero", []string{"0"}, "year not in range 1..9999\n"},
		{"year too big", []string{"10000"}, "year not in range 1..9999\n"},
		{"month zero", []string{"0", "2024"}, "month not in range 1..12\n"},
		{"month too big", []string{"13", "2024"}, "month not in range 1..12\n"},
		{"year checked before month", []string{"13", "0"}, "year not in range 1..9999\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := run(t, NewCal(), tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Equal(t, tt.want, errOut)
		})
	}
}

func TestCalBadColor(t *testing.T) {
	code, _, errOut := run(t, NewCal(), "--color=sometimes")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `invalid color "sometimes"`)
}

func TestCalJSONError(t *testing.T) {
	var doc bytes.Buffer
	saved := color.Output
	color.Output = &doc
	t.Cleanup(func() { color.Output = saved })

	code, out, errOut := run(t, NewCal(), "--json", "0")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
	assert.JSONEq(t, `{"error": "year not in range 1..9999"}`, doc.String())
}

func TestCalVersion(t *testing.T) {
	code, out, _ := run(t, NewCal(), "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, version)
}

func TestTouchMissingOperand(t *testing.T) {
	code, _, errOut := run(t, NewTouch())
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut, "missing file operand\nusage: touch [-acm]"), errOut)
}

func TestTouchIgnoresColorSetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	t.Setenv("WUTILS_COLOR", "sometimes")

	code, _, errOut := run(t, NewTouch(), path)
	require.Equal(t, 0, code, errOut)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestTouchCreates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	code, _, errOut := run(t, NewTouch(), path)
	require.Equal(t, 0, code, errOut)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestTouchOptionsStopAtFirstOperand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, _, errOut := run(t, NewTouch(), "first", "-c")
	require.Equal(t, 0, code, errOut)
	for _, name := range []string{"first", "-c"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestTouchDoubleDash(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, _, errOut := run(t, NewTouch(), "--", "-m")
	require.Equal(t, 0, code, errOut)
	_, err := os.Stat(filepath.Join(dir, "-m"))
	assert.NoError(t, err)
}

func TestTouchIllegalStamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")

	code, _, errOut := run(t, NewTouch(), "-t", "12345", path)
	assert.Equal(t, 1, code)
	assert.Equal(t, "out of range or illegal time specification: [[CC]YY]MMDDhhmm[.SS]\n", errOut)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTouchFailuresExitOne(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "missing-dir", "a.txt")
	good := filepath.Join(dir, "b.txt")

	code, _, errOut := run(t, NewTouch(), bad, good)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "cannot touch '"+bad+"'")
	_, err := os.Stat(good)
	assert.NoError(t, err)
}

func TestTouchUnknownFlag(t *testing.T) {
	code, _, errOut := run(t, NewTouch(), "-z", "a.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown shorthand flag: 'z'")
	assert.Contains(t, errOut, "usage: touch")
}
