package galleria

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// safeName validates that name is a plain file name (no separators, no
// traversal) and returns it cleaned.
func safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	return cleaned, nil
}

// stripExt removes a trailing file extension, if any.
func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// writeFileAtomic writes data to path via a temp file in the same
// directory: write, fsync, rename. A failed write never leaves a partial
// file at path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".galleria-tmp-*")
	if err != nil {
		return fmt.Errorf("galleria: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("galleria: write temp: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("galleria: chmod temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("galleria: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("galleria: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("galleria: rename: %w", err)
	}
	success = true
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty. Convenience for main packages wiring up SiteConfig.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("galleria: required environment variable %s is not set", key)
	}
	return v
}
