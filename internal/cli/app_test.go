package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/domain/entity"
	"github.com/bnema/wmiitile/internal/logging"
	"github.com/bnema/wmiitile/pkg/wmii"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewApp_WithConfigFile(t *testing.T) {
	path := writeConfig(t, `
[layout]
name = "tall"
border_width = 2
margin = 4
remove_policy = "focused_only"

[screen]
width = 800
height = 600
`)

	app, err := NewApp(Options{ConfigFile: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, wmii.Options{
		Name:         "tall",
		BorderWidth:  2,
		Margin:       4,
		RemovePolicy: entity.RemoveFocusedOnly,
	}, app.LayoutOptions())
	assert.Equal(t, wmii.Rect{Width: 800, Height: 600}, app.Screen())
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestNewApp_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "[screen]\nwidth = -1\n")

	_, err := NewApp(Options{ConfigFile: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen.width must be positive")
}

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestApp_RedirectLogs(t *testing.T) {
	path := writeConfig(t, "[logging]\nlevel = \"debug\"\nformat = \"json\"\n")
	app, err := NewApp(Options{ConfigFile: path})
	require.NoError(t, err)

	first := &closeRecorder{}
	app.RedirectLogs(first)
	logging.FromContext(app.Ctx()).Debug().Msg("into first")
	assert.Contains(t, first.String(), `"message":"into first"`)

	second := &closeRecorder{}
	app.RedirectLogs(second)
	assert.Equal(t, 1, first.closed)

	app.Logger().Info().Msg("into second")
	assert.Contains(t, second.String(), "into second")
	assert.NotContains(t, first.String(), "into second")

	require.NoError(t, app.Close())
	require.NoError(t, app.Close())
	assert.Equal(t, 1, second.closed)
}
