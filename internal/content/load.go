package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Default builds the registry from the content compiled into the binary.
func Default() (*Registry, error) {
	return Parse(defaultContent)
}

// LoadFile builds a registry from a YAML content file on disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read content file %s", path), Cause: err}
	}
	return Parse(data)
}

// Parse decodes YAML content strictly; unknown keys are rejected.
func Parse(data []byte) (*Registry, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Message: "failed to decode content YAML", Cause: err}
	}
	return New(doc)
}
