package aliasfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fievelk/virtualias/internal/config"
)

func (r *Repository) read() (string, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // No functions file yet means no aliases
		}
		return "", fmt.Errorf("failed to read functions file %s: %w", config.ToUserFriendlyPath(r.filePath), err)
	}
	return string(data), nil
}

func (r *Repository) write(contents string) error {
	dirPath := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(r.filePath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(r.filePath, []byte(contents), mode); err != nil {
		return fmt.Errorf("failed to write functions file %s: %w", config.ToUserFriendlyPath(r.filePath), err)
	}
	r.logger.Debug("Functions file rewritten", "file", r.filePath, "bytes", len(contents))
	return nil
}
