package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestSetLayoutDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "wmii", mgr.viper.GetString("layout.name"))
	assert.Equal(t, 1, mgr.viper.GetInt("layout.border_width"))
	assert.Equal(t, "#ff5555", mgr.viper.GetString("layout.border_focus"))
	assert.Equal(t, "structural", mgr.viper.GetString("layout.remove_policy"))
	assert.Equal(t, 1920, mgr.viper.GetInt("screen.width"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.RemovePolicy = entity.RemovePolicy(" Focused_Only ")
	cfg.Layout.Name = "   "
	cfg.Layout.BorderFocus = " #AABBCC"
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = "JSON"

	normalizeConfig(cfg)

	assert.Equal(t, entity.RemoveFocusedOnly, cfg.Layout.RemovePolicy)
	assert.Equal(t, "wmii", cfg.Layout.Name)
	assert.Equal(t, "#aabbcc", cfg.Layout.BorderFocus)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNormalizeConfig_UnknownPolicyIsLeftForValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.RemovePolicy = "lazy"

	normalizeConfig(cfg)

	assert.Equal(t, entity.RemovePolicy("lazy"), cfg.Layout.RemovePolicy)
	assert.Error(t, validateConfig(cfg))
}

func TestManagerLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
[layout]
name = "tall"
border_width = 3
margin = 2
remove_policy = "focused_only"

[screen]
width = 800
height = 600
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "tall", cfg.Layout.Name)
	assert.Equal(t, 3, cfg.Layout.BorderWidth)
	assert.Equal(t, 2, cfg.Layout.Margin)
	assert.Equal(t, entity.RemoveFocusedOnly, cfg.Layout.RemovePolicy)
	assert.Equal(t, 800, cfg.Screen.Width)
	// Keys absent from the file fall back to defaults.
	assert.Equal(t, "#ff00ff", cfg.Layout.BorderStack)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManagerLoad_CreatesDefaultFile(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path, err := GetConfigFile()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManagerLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[layout]\nborder_width = 2\n")
	t.Setenv("WMIITILE_LAYOUT_BORDER_WIDTH", "5")
	t.Setenv("WMIITILE_LOG_LEVEL", "debug")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 5, mgr.Get().Layout.BorderWidth)
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestManagerLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
[layout]
border_width = -1
border_focus = "red"
remove_policy = "sometimes"
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.border_width must be non-negative")
	assert.Contains(t, err.Error(), "layout.border_focus must be a hex color")
	assert.Contains(t, err.Error(), "layout.remove_policy must be one of")
}

func TestManagerLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[layout\nname = ")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestNewManagerWithFile_EmptyPath(t *testing.T) {
	_, err := NewManagerWithFile("")
	assert.Error(t, err)
}

func TestManagerGet_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManagerGet_ReturnsCopy(t *testing.T) {
	path := writeConfig(t, "")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.BorderWidth = 42

	assert.Equal(t, 1, mgr.Get().Layout.BorderWidth)
}

func TestManagerReload_NotifiesCallbacks(t *testing.T) {
	path := writeConfig(t, "[layout]\nborder_width = 1\n")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []int
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg.Layout.BorderWidth) })
	mgr.OnConfigChange(func(cfg *Config) { cfg.Layout.BorderWidth = 99 })
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg.Layout.BorderWidth) })

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nborder_width = 4\n"), filePerm))

	mgr.mu.Lock()
	require.NoError(t, mgr.reload())
	mgr.notifyCallbacksLocked()

	// Each callback receives its own copy.
	assert.Equal(t, []int{4, 4}, got)
	assert.Equal(t, 4, mgr.Get().Layout.BorderWidth)
}

func TestManagerReload_InvalidKeepsPrevious(t *testing.T) {
	path := writeConfig(t, "[layout]\nborder_width = 2\n")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nborder_width = -3\n"), filePerm))

	mgr.mu.Lock()
	err = mgr.reload()
	mgr.mu.Unlock()

	require.Error(t, err)
	assert.Equal(t, 2, mgr.Get().Layout.BorderWidth)
}

func TestManagerWatch_RequiresLoad(t *testing.T) {
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Error(t, mgr.Watch())
}

func TestManagerSetLogger(t *testing.T) {
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	mgr.SetLogger(zerolog.New(&buf))

	log := mgr.watchLogger()
	log.Warn().Msg("reload failed")
	assert.Contains(t, buf.String(), "reload failed")
}
