package shellconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fievelk/virtualias/internal/config"
)

func readConfigFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // A missing startup file is created on first write
		}
		return "", fmt.Errorf("failed to read shell config %s: %w", config.ToUserFriendlyPath(filePath), err)
	}
	return string(data), nil
}

// appendToConfigFile appends text to the end of filePath, creating it when missing.
func appendToConfigFile(filePath string, text string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(filePath), err)
	}

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open shell config %s for appending: %w", config.ToUserFriendlyPath(filePath), err)
	}
	defer file.Close()

	if _, err := file.WriteString(text); err != nil {
		return fmt.Errorf("failed to write reference to shell config %s: %w", config.ToUserFriendlyPath(filePath), err)
	}
	return nil
}
