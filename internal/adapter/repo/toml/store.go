// Package tomlrepo persists player and calendar state as human-readable
// TOML files under a data directory. Every write goes through a
// temp-file-then-rename so a crash never leaves a half-written file.
package tomlrepo

import (
	"fmt"
	"os"
	"path/filepath"
)

func ensureDataDir(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func dataPath(dataDir, name string) string {
	return filepath.Join(dataDir, name)
}
