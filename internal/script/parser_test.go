package script_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/script"
)

func TestParse_Commands(t *testing.T) {
	cmds, err := script.ParseString(`
# setup
screen 0 0 800 600
ADD a b   # two windows
shuffle_right

expect rows 1 b
`)
	require.NoError(t, err)
	require.Len(t, cmds, 4)

	assert.Equal(t, script.CommandScreen, cmds[0].Type)
	assert.Equal(t, []string{"0", "0", "800", "600"}, cmds[0].Args)
	assert.Equal(t, 3, cmds[0].Line)

	assert.Equal(t, script.CommandAdd, cmds[1].Type)
	assert.Equal(t, []string{"a", "b"}, cmds[1].Args)
	assert.Equal(t, "add a b", cmds[1].String())

	assert.Equal(t, script.CommandShuffleRight, cmds[2].Type)
	assert.Empty(t, cmds[2].Args)
	assert.True(t, cmds[2].IsMutation())

	assert.Equal(t, script.CommandExpect, cmds[3].Type)
	assert.False(t, cmds[3].IsMutation())
	assert.Equal(t, 7, cmds[3].Line)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
	}{
		{"unknown command", "add a\njump", script.ErrUnknownCommand, 2},
		{"missing argument", "focus", script.ErrMissingArgument, 1},
		{"too many arguments", "left now", script.ErrTooManyArguments, 1},
		{"short screen", "\n\nscreen 0 0 10", script.ErrMissingArgument, 3},
		{"bad add_column side", "add_column middle a", script.ErrInvalidArgument, 1},
		{"unknown expectation", "expect luck", script.ErrInvalidArgument, 1},
		{"expect width arity", "expect width 0", script.ErrMissingArgument, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := script.ParseString(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var lineErr *script.LineError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, tt.line, lineErr.Line)
		})
	}
}

func TestParse_ReportsEveryBadLine(t *testing.T) {
	_, err := script.ParseString("jump\nadd a\nfly\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "line 3")
	assert.NotContains(t, err.Error(), "line 2")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.wmii")
	require.NoError(t, os.WriteFile(path, []byte("add a\nexpect focus a\n"), 0o644))

	cmds, err := script.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, cmds, 2)

	_, err = script.ParseFile(filepath.Join(t.TempDir(), "missing.wmii"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
