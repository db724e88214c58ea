package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/turmas/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDBPath   = "TURMAS_DB_PATH"
	EnvLogLevel = "TURMAS_LOG_LEVEL"
	EnvLogDir   = "TURMAS_LOG_DIR"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Logging     LoggingConfig      `yaml:"logging"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig locates the key-value database
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// A .env file in the working directory is read first; environment
// variables win over the file. Returns defaults if the file doesn't exist.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	config.applyEnv()
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "turmas", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "turmas", "config.yaml"), nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		c.Logging.Dir = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	dataDir := defaultDataDir()

	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(dataDir, "turmas.db")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = filepath.Join(dataDir, "logs")
	}

	c.Storage.Path = expandHome(c.Storage.Path)
	c.Logging.Dir = expandHome(c.Logging.Dir)
	c.ColorScheme.ApplyDefaults()
}

// defaultDataDir is ~/.turmas, or ./.turmas when there is no home directory
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".turmas"
	}
	return filepath.Join(home, ".turmas")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
