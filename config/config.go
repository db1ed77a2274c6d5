// Package config loads charm's defaults from a dotenv file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings the command line starts from.
type Config struct {
	Bytes      bool
	Names      bool
	Scripts    bool
	EastAsian  bool
	Format     string
	Color      string
	BufferSize int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:     "line",
		Color:      ColorAuto,
		BufferSize: 32 * 1024,
	}
}

// Load returns the defaults overridden by the config file and then by the
// process environment. A missing config file is not an error.
func Load() (Config, error) {
	file, err := readFile(Path())
	if err != nil {
		return Config{}, err
	}
	return FromLookup(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(file[key])
	})
}

// Path returns the location of the config file: $CHARM_CONFIG, else
// charm/config.env below the user config directory.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("CHARM_CONFIG")); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "charm", "config.env")
}

func readFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}

// FromLookup builds a Config from a key lookup function returning "" for
// unset keys.
func FromLookup(lookup func(string) string) (Config, error) {
	cfg := Default()
	var err error
	if cfg.Bytes, err = boolStrict(lookup, "CHARM_BYTES", cfg.Bytes); err != nil {
		return Config{}, err
	}
	if cfg.Names, err = boolStrict(lookup, "CHARM_NAMES", cfg.Names); err != nil {
		return Config{}, err
	}
	if cfg.Scripts, err = boolStrict(lookup, "CHARM_SCRIPTS", cfg.Scripts); err != nil {
		return Config{}, err
	}
	if cfg.EastAsian, err = boolStrict(lookup, "CHARM_EAST_ASIAN", cfg.EastAsian); err != nil {
		return Config{}, err
	}
	if cfg.BufferSize, err = intStrict(lookup, "CHARM_BUFFER_SIZE", cfg.BufferSize); err != nil {
		return Config{}, err
	}
	if v := strings.ToLower(lookup("CHARM_FORMAT")); v != "" {
		cfg.Format = v
	}
	if v := strings.ToLower(lookup("CHARM_COLOR")); v != "" {
		cfg.Color = v
	}
	if lookup("NO_COLOR") != "" {
		cfg.Color = ColorNever
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch c.Format {
	case "line", "json":
	default:
		return fmt.Errorf("config: invalid format %q: expected line or json", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: invalid color %q: expected auto, always or never", c.Color)
	}
	if c.BufferSize != 0 && c.BufferSize < 16 {
		return errors.New("config: buffer size must be 0 or at least 16")
	}
	return nil
}

func intStrict(lookup func(string) string, key string, fallback int) (int, error) {
	value := lookup(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return parsed, nil
}

func boolStrict(lookup func(string) string, key string, fallback bool) (bool, error) {
	value := strings.ToLower(lookup(key))
	if value == "" {
		return fallback, nil
	}
	switch value {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("config: invalid %s: expected true/false", key)
	}
}
