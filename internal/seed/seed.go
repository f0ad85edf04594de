// Package seed loads the embedded starter catalog used to populate a fresh
// database with example categories and questions.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogFile []byte

// Question is a starter question inside a seed category.
type Question struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Context    string `yaml:"context"`
	Difficulty string `yaml:"difficulty"`
}

// Category is a starter category with its questions.
type Category struct {
	Name      string     `yaml:"name"`
	Questions []Question `yaml:"questions"`
}

// Catalog is the embedded starter content.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(catalogFile, &catalog); err != nil {
		return nil, fmt.Errorf("unmarshal seed catalog: %w", err)
	}
	return &catalog, nil
}
