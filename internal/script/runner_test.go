package script_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/script"
	"github.com/bnema/wmiitile/pkg/wmii"
)

var screen = wmii.Rect{Width: 1920, Height: 1080}

func run(t *testing.T, src string) (*script.Result, error) {
	t.Helper()
	cmds, err := script.ParseString(src)
	require.NoError(t, err)
	return script.NewRunner("test", wmii.DefaultOptions(), screen).Run(context.Background(), cmds)
}

func TestRunner_Testdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.wmii"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			cmds, err := script.ParseFile(file)
			require.NoError(t, err)

			result, err := script.NewRunner(file, wmii.DefaultOptions(), screen).Run(context.Background(), cmds)
			require.NoError(t, err)
			assert.Positive(t, result.Expectations)
		})
	}
}

func TestRunner_Result(t *testing.T) {
	result, err := run(t, "screen 0 0 1000 800\nadd A B\nshuffle_right\n")
	require.NoError(t, err)

	assert.Equal(t, "test", result.Name)
	assert.Equal(t, 2, result.Steps)
	assert.Equal(t, wmii.Rect{Width: 1000, Height: 800}, result.Screen)
	assert.Equal(t, wmii.ClientID("B"), result.Snapshot.CurrentWindow)
	require.Len(t, result.Placements, 2)
	assert.Equal(t, 500, result.Placements[1].X)
	assert.Equal(t, []wmii.ClientID{"B"}, result.FocusHistory)
}

func TestRunner_FailedExpectation(t *testing.T) {
	result, err := run(t, "add A\nadd B\nexpect focus A\nadd C\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, script.ErrExpectationFailed)

	var lineErr *script.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 3, lineErr.Line)
	// Execution stops at the failing line.
	assert.Equal(t, []wmii.ClientID{"A", "B"}, result.Snapshot.Clients)
}

func TestRunner_PlacementExpectation(t *testing.T) {
	_, err := run(t, "screen 10 20 400 300\nadd A\nexpect placement A 10 20 398 298\n")
	assert.NoError(t, err)
}

func TestRunner_AddColumnOfUnmanagedClientBreaksInvariants(t *testing.T) {
	result, err := run(t, "add A\nadd_column prepend B\n")

	require.ErrorIs(t, err, entity.ErrInvariantViolated)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, result.Snapshot.Columns, 2)
}

func TestRunner_ColumnOutOfRange(t *testing.T) {
	_, err := run(t, "add A\nexpect rows 3 A\n")
	assert.ErrorIs(t, err, script.ErrExpectationFailed)
}

func TestRunner_InvalidScreen(t *testing.T) {
	_, err := run(t, "screen 0 0 0 10\n")
	assert.ErrorIs(t, err, script.ErrInvalidArgument)
}

func TestRunner_FocusedOnlyPolicyViolatesNothing(t *testing.T) {
	opts := wmii.DefaultOptions()
	opts.RemovePolicy = wmii.RemoveFocusedOnly
	cmds, err := script.ParseString("add A B\nremove A\nexpect clients B\nexpect rows 0 A B\nadd A\nexpect rows 0 B A\n")
	require.NoError(t, err)

	_, err = script.NewRunner("legacy", opts, screen).Run(context.Background(), cmds)
	assert.NoError(t, err)
}

func TestRunner_Cancelled(t *testing.T) {
	cmds, err := script.ParseString("add A\n")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = script.NewRunner("c", wmii.DefaultOptions(), screen).Run(ctx, cmds)
	assert.ErrorIs(t, err, context.Canceled)
}
