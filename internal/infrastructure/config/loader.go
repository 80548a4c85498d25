package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/wmiitile/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	file      string // explicit config file, empty to search the XDG dir
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    *zerolog.Logger
}

// NewManager creates a new configuration manager reading
// $XDG_CONFIG_HOME/wmiitile/config.toml.
func NewManager() (*Manager, error) {
	return newManager("")
}

// NewManagerWithFile creates a configuration manager bound to a single file.
func NewManagerWithFile(path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	return newManager(path)
}

func newManager(file string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
	}

	// WMIITILE_LAYOUT_BORDER_WIDTH overrides layout.border_width, and so on.
	v.SetEnvPrefix("WMIITILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WMIITILE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WMIITILE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WMIITILE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WMIITILE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		file:      file,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.targetFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.targetFile(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch entity.RemovePolicy(strings.ToLower(strings.TrimSpace(string(config.Layout.RemovePolicy)))) {
	case "", entity.RemoveStructural:
		config.Layout.RemovePolicy = entity.RemoveStructural
	case entity.RemoveFocusedOnly:
		config.Layout.RemovePolicy = entity.RemoveFocusedOnly
	}

	config.Layout.Name = strings.TrimSpace(config.Layout.Name)
	if config.Layout.Name == "" {
		config.Layout.Name = defaultLayoutName
	}
	config.Layout.BorderFocus = strings.ToLower(strings.TrimSpace(config.Layout.BorderFocus))
	config.Layout.BorderNormal = strings.ToLower(strings.TrimSpace(config.Layout.BorderNormal))
	config.Layout.BorderStack = strings.ToLower(strings.TrimSpace(config.Layout.BorderStack))

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.targetFile()
}

func (m *Manager) targetFile() string {
	if m.file != "" {
		return m.file
	}
	path, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return path
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.targetFile()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	if m.file == "" {
		m.viper.SetConfigFile(configFile)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setScreenDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.name", defaults.Layout.Name)
	m.viper.SetDefault("layout.border_width", defaults.Layout.BorderWidth)
	m.viper.SetDefault("layout.margin", defaults.Layout.Margin)
	m.viper.SetDefault("layout.border_focus", defaults.Layout.BorderFocus)
	m.viper.SetDefault("layout.border_normal", defaults.Layout.BorderNormal)
	m.viper.SetDefault("layout.border_stack", defaults.Layout.BorderStack)
	m.viper.SetDefault("layout.remove_policy", string(defaults.Layout.RemovePolicy))
}

func (m *Manager) setScreenDefaults(defaults *Config) {
	m.viper.SetDefault("screen.x", defaults.Screen.X)
	m.viper.SetDefault("screen.y", defaults.Screen.Y)
	m.viper.SetDefault("screen.width", defaults.Screen.Width)
	m.viper.SetDefault("screen.height", defaults.Screen.Height)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
