package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the top-level shape of a YAML catalog file.
type File struct {
	Name    string       `yaml:"name,omitempty"`
	Domains []Descriptor `yaml:"domains"`
}

// Load decodes descriptors from a YAML catalog and validates their
// structure. Balance checks happen later, at build time.
func Load(r io.Reader) (File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return File{}, fmt.Errorf("decode catalog: %w", err)
	}
	for _, desc := range file.Domains {
		if err := desc.validate(); err != nil {
			return File{}, err
		}
	}
	return file, nil
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}
