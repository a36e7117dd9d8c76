package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFileName is the name of the environment variables file inside YTDir.
const EnvFileName = ".env"

// LoadDotEnv loads environment variables from .yt/.env under baseDir if the
// file exists. godotenv does not override variables already present in the
// environment, so system env vars keep priority. A missing file is not an
// error.
func LoadDotEnv(baseDir string) error {
	envPath := filepath.Join(baseDir, YTDir, EnvFileName)

	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(envPath)
}

// LoadDotEnvFromCwd loads .yt/.env from the current working directory.
func LoadDotEnvFromCwd() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	return LoadDotEnv(cwd)
}
