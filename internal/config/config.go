package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrUnknownKey is returned by Set for keys the config file does not define.
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the application configuration
type Config struct {
	Strict            bool   `toml:"strict" env:"CARDSCHEMA_STRICT"`
	SingleImageSource bool   `toml:"single_image_source" env:"CARDSCHEMA_SINGLE_IMAGE_SOURCE"`
	Library           string `toml:"library" env:"CARDSCHEMA_LIBRARY"`
	Color             string `toml:"color" env:"CARDSCHEMA_COLOR"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetLibraryPath returns the default path of the card library
func GetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardschema", "cards")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardschema", "config.toml")
}

// GetEnvFilePath returns the path to the optional dotenv file read
// alongside the config file
func GetEnvFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardschema", "cardschema.env")
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Library: GetLibraryPath(),
		Color:   ColorAuto,
	}
}

// LoadConfig loads the config file, creating it with defaults if missing.
// The dotenv file, then environment variables, override values from the file.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	vars, err := environment()
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(config, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// environment merges the dotenv file with the process environment. Process
// variables win.
func environment() (map[string]string, error) {
	vars := make(map[string]string)

	envPath := GetEnvFilePath()
	if _, err := os.Stat(envPath); err == nil {
		fileVars, err := godotenv.Read(envPath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", envPath, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := save(config); err != nil {
		return nil, err
	}
	return config, nil
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Set updates a single key in the config file.
func Set(key, value string) error {
	configPath := GetConfigFilePath()

	config := Default()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return fmt.Errorf("error decoding config file: %w", err)
		}
	}

	switch key {
	case "strict", "single_image_source":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		if key == "strict" {
			config.Strict = b
		} else {
			config.SingleImageSource = b
		}
	case "library":
		config.Library = value
	case "color":
		config.Color = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := config.validate(); err != nil {
		return err
	}
	return save(config)
}

// GetCardPath resolves a card library name or path. Names are looked up in
// the configured library first, then treated as a path.
func GetCardPath(config *Config, name string) (string, error) {
	if config.Library != "" {
		path := filepath.Join(config.Library, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("not found in library or on disk: %s", name)
}
