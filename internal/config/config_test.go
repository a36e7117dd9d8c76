package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, YTDir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, YTDir, ConfigFileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base_url: https://yt.example.com\nproject: HD\n")

	cfg, err := LoadFile(filepath.Join(dir, YTDir, ConfigFileName))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.BaseURL != "https://yt.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Project != "HD" {
		t.Errorf("Project = %q", cfg.Project)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base_url: [broken\n")

	if _, err := LoadFile(filepath.Join(dir, YTDir, ConfigFileName)); err == nil {
		t.Error("LoadFile() succeeded on invalid YAML, want error")
	}
}

func TestResolveTokenPriority(t *testing.T) {
	tests := []struct {
		name      string
		ytToken   string
		youtrack  string
		cfgToken  string
		want      string
		wantError bool
	}{
		{name: "YT_TOKEN wins", ytToken: "a", youtrack: "b", cfgToken: "c", want: "a"},
		{name: "YOUTRACK_TOKEN next", youtrack: "b", cfgToken: "c", want: "b"},
		{name: "config token last", cfgToken: "c", want: "c"},
		{name: "nothing set", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("YT_TOKEN", tt.ytToken)
			t.Setenv("YOUTRACK_TOKEN", tt.youtrack)

			cfg := &Config{Token: tt.cfgToken}
			got, err := cfg.ResolveToken()
			if tt.wantError {
				if err == nil {
					t.Error("ResolveToken() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveToken() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveBaseURL(t *testing.T) {
	t.Setenv("YT_BASE_URL", "")

	cfg := &Config{BaseURL: "https://yt.example.com"}
	got, err := cfg.ResolveBaseURL()
	if err != nil || got != "https://yt.example.com" {
		t.Errorf("ResolveBaseURL() = %q, %v", got, err)
	}

	t.Setenv("YT_BASE_URL", "https://override.example.com")
	got, err = cfg.ResolveBaseURL()
	if err != nil || got != "https://override.example.com" {
		t.Errorf("ResolveBaseURL() with env = %q, %v", got, err)
	}

	t.Setenv("YT_BASE_URL", "")
	if _, err := (&Config{}).ResolveBaseURL(); err == nil {
		t.Error("ResolveBaseURL() with nothing set succeeded, want error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, YTDir), 0o755); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(dir, YTDir, EnvFileName)
	if err := os.WriteFile(envFile, []byte("YT_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("YT_TEST_DOTENV", "")
	_ = os.Unsetenv("YT_TEST_DOTENV")

	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("YT_TEST_DOTENV"); got != "from-file" {
		t.Errorf("YT_TEST_DOTENV = %q, want from-file", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(t.TempDir()); err != nil {
		t.Errorf("LoadDotEnv() on missing file error = %v, want nil", err)
	}
}
