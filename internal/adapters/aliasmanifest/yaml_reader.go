package aliasmanifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fievelk/virtualias/internal/core/domain/alias"
	"github.com/fievelk/virtualias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLReader implements the AliasManifestReader interface
// by decoding a YAML list of alias records.
type YAMLReader struct{}

// NewYAMLReader creates a new YAMLReader.
func NewYAMLReader() ports.AliasManifestReader {
	return &YAMLReader{}
}

// ReadAliases reads and parses the records in the YAML file at path.
// An empty document yields an empty list; unknown keys are rejected.
func (r *YAMLReader) ReadAliases(path string) ([]alias.Alias, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias manifest %s: %w", path, err)
	}

	aliases := []alias.Alias{}
	if len(bytes.TrimSpace(data)) == 0 {
		return aliases, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&aliases); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal alias manifest %s: %w", path, err)
	}
	return aliases, nil
}
