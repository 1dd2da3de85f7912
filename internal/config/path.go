package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultStoreFile  = "expenses.json"
	DefaultExportFile = "expenses.csv"
)

// ResolvePath expands a leading "~" and anchors relative paths at the
// working directory.
func ResolvePath(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("path is empty")
	}

	if value == "~" || strings.HasPrefix(value, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, strings.TrimPrefix(value, "~"))
	}

	if filepath.IsAbs(value) {
		return filepath.Clean(value), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(wd, value), nil
}
