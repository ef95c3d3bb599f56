package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/advent-of-code-2024/puzzle/maze"
)

var (
	ErrInputNotFound = errors.New("input not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// Extension is appended to input names that have none
const Extension = ".txt"

// Info describes an input file found in the data directory
type Info struct {
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Rows     int    `json:"rows,omitempty"`
	Cols     int    `json:"cols,omitempty"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// Manager handles puzzle input loading and caching
type Manager struct {
	dataDir string
	grids   map[string]*maze.Grid
	mu      sync.RWMutex
}

// NewManager creates a new input manager over dataDir
func NewManager(dataDir string) (*Manager, error) {
	info, err := os.Stat(dataDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("data directory does not exist: %s", dataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path is not a directory: %s", dataDir)
	}

	return &Manager{
		dataDir: dataDir,
		grids:   make(map[string]*maze.Grid),
	}, nil
}

// DataDir returns the directory inputs are resolved against
func (m *Manager) DataDir() string {
	return m.dataDir
}

// Path returns the file path an input name resolves to
func (m *Manager) Path(name string) string {
	if filepath.Ext(name) == "" {
		name += Extension
	}
	return filepath.Join(m.dataDir, name)
}

// Load returns the parsed grid for name, reading it on first use
func (m *Manager) Load(name string) (*maze.Grid, error) {
	key := m.Path(name)

	m.mu.RLock()
	if grid, exists := m.grids[key]; exists {
		m.mu.RUnlock()
		return grid, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if grid, exists := m.grids[key]; exists {
		return grid, nil
	}

	data, err := os.ReadFile(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, key)
		}
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	grid, err := maze.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, key, err)
	}

	m.grids[key] = grid
	return grid, nil
}

// List returns information about every input file in the data directory,
// including the ones that fail to parse
func (m *Manager) List() ([]*Info, error) {
	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var inputs []*Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		info := &Info{
			Filename: entry.Name(),
			Name:     strings.TrimSuffix(entry.Name(), Extension),
		}
		grid, err := m.Load(info.Name)
		if err != nil {
			info.Error = err.Error()
		} else {
			info.Valid = true
			info.Rows = grid.Rows()
			info.Cols = grid.Cols()
		}
		inputs = append(inputs, info)
	}

	sort.Slice(inputs, func(i, j int) bool {
		return inputs[i].Name < inputs[j].Name
	})
	return inputs, nil
}

// Refresh drops every cached grid so the next Load rereads from disk
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grids = make(map[string]*maze.Grid)
}
