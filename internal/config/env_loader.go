package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from path. Variables already set win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadDefaultEnvFile loads .env from the working directory or up to three
// parent directories. A missing file is not an error.
func LoadDefaultEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return nil
	}
	for i := 0; i < 4; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return LoadEnvFile(envPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
