package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/liftoff/internal/launches"
)

// Config holds the settings liftoff needs to reach the launch API.
type Config struct {
	APIURL  string
	Timeout time.Duration
	LogFile string
}

const (
	defaultConfigPath = "~/.config/liftoff/config.toml"
	defaultLogFile    = "~/.local/state/liftoff/liftoff.log"

	envPrefix = "LIFTOFF_"
)

// Load parses the config file at path (or the default location), falling
// back to defaults when it is missing, then applies LIFTOFF_* environment
// overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:  launches.DefaultBaseURL,
		Timeout: launches.DefaultTimeout,
		LogFile: defaultLogFile,
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		LogFile        string `toml:"log_file"`
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.TimeoutSeconds < 0 {
		return Config{}, fmt.Errorf("parse config: timeout_seconds must not be negative")
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.LogFile = mustExpand(cfg.LogFile)
	return cfg, nil
}

// applyEnv overlays LIFTOFF_API_URL, LIFTOFF_TIMEOUT_SECONDS and
// LIFTOFF_LOG_FILE onto cfg.
func applyEnv(cfg *Config) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return fmt.Errorf("load env overrides: %w", err)
	}

	if v := strings.TrimSpace(k.String("api_url")); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(k.String("timeout_seconds")); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return fmt.Errorf("parse %sTIMEOUT_SECONDS: want a positive integer, got %q", envPrefix, v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if v := strings.TrimSpace(k.String("log_file")); v != "" {
		cfg.LogFile = v
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
