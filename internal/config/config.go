// Package config loads yt settings from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YTDir is the name of the yt configuration directory, looked up both in the
// user's home directory and in the working directory.
const YTDir = ".yt"

// ConfigFileName is the name of the configuration file inside YTDir.
const ConfigFileName = "config.yaml"

// Config holds all yt configuration.
type Config struct {
	// BaseURL is the YouTrack instance URL, e.g. https://example.youtrack.cloud.
	BaseURL string `yaml:"base_url"`
	// Token is the permanent API token. Prefer the YT_TOKEN environment
	// variable over storing it here.
	Token string `yaml:"token"`
	// Project is the short name of the default project for new issues.
	Project string `yaml:"project"`
	// Update controls the release update check.
	Update UpdateConfig `yaml:"update"`
}

// UpdateConfig holds update check settings.
type UpdateConfig struct {
	Owner             string `yaml:"owner"`
	Repo              string `yaml:"repo"`
	IncludePreRelease bool   `yaml:"include_prerelease"`
}

// NewDefault returns a Config with default values.
func NewDefault() *Config {
	return &Config{}
}

// Load reads the configuration, applying the home config first and the
// working directory config on top of it. Missing files are not an error.
func Load() (*Config, error) {
	cfg := NewDefault()

	if home, err := os.UserHomeDir(); err == nil {
		if err := mergeFile(cfg, filepath.Join(home, YTDir, ConfigFileName)); err != nil {
			return nil, err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, filepath.Join(cwd, YTDir, ConfigFileName)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads one configuration file, for the --config flag.
func LoadFile(path string) (*Config, error) {
	cfg := NewDefault()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ResolveToken finds the YouTrack token from multiple sources.
// Priority order:
//  1. YT_TOKEN env var
//  2. YOUTRACK_TOKEN env var
//  3. the token from the configuration file
func (c *Config) ResolveToken() (string, error) {
	for _, key := range []string{"YT_TOKEN", "YOUTRACK_TOKEN"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	if c.Token != "" {
		return c.Token, nil
	}
	return "", errors.New("no YouTrack token: set YT_TOKEN or add token to " + YTDir + "/" + ConfigFileName)
}

// ResolveBaseURL returns the instance URL from the environment or the
// configuration file.
func (c *Config) ResolveBaseURL() (string, error) {
	if v := os.Getenv("YT_BASE_URL"); v != "" {
		return v, nil
	}
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	return "", errors.New("no YouTrack URL: set YT_BASE_URL or add base_url to " + YTDir + "/" + ConfigFileName)
}
