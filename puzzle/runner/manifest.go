package runner

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest lists puzzle inputs with their known answers
type Manifest struct {
	Puzzles []Entry `yaml:"puzzles" json:"puzzles"`
}

// Entry is one input and its expected answers. Nil expectations are not
// compared.
type Entry struct {
	Name          string `yaml:"name" json:"name"`
	Input         string `yaml:"input" json:"input"`
	LowestScore   *int   `yaml:"lowest_score,omitempty" json:"lowest_score,omitempty"`
	BestPathTiles *int   `yaml:"best_path_tiles,omitempty" json:"best_path_tiles,omitempty"`
}

// LoadManifest reads and validates a YAML manifest
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest YAML
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every entry names an input
func (m *Manifest) Validate() error {
	if len(m.Puzzles) == 0 {
		return fmt.Errorf("%w: no puzzles listed", ErrInvalidManifest)
	}

	seen := make(map[string]bool, len(m.Puzzles))
	for i, p := range m.Puzzles {
		if p.Name == "" {
			return fmt.Errorf("%w: puzzle %d has no name", ErrInvalidManifest, i+1)
		}
		if p.Input == "" {
			return fmt.Errorf("%w: puzzle '%s' has no input", ErrInvalidManifest, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate puzzle name '%s'", ErrInvalidManifest, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
