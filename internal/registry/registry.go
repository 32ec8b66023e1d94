// Package registry provides a global registry for board factories.
// Board backends register themselves in init() functions, allowing the
// commands to discover and open boards without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/hw"
	"github.com/vovakirdan/flapboard/internal/video"
)

// Board is an opened board: its peripheral registers plus the visible
// pixel surface the game presents into.
type Board interface {
	hw.Peripherals

	// Surface returns the visible pixel buffer. It stays valid until Close.
	Surface() *video.Buffer

	// Close releases the board. Displays are blanked where the backend
	// supports it.
	Close() error
}

// BoardInfo contains metadata about a registered board.
type BoardInfo struct {
	Name        string
	Description string
}

// Factory opens a board using the given configuration.
type Factory func(cfg config.BoardConfig) (Board, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a board factory to the registry.
// Typically called from a backend's init() function.
// Panics if a board with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: board %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered boards, sorted by name.
func List() []BoardInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BoardInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BoardInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open creates a board by its name.
// Returns an error if the name is not registered or the backend fails.
func Open(name string, cfg config.BoardConfig) (Board, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown board %q", name)
	}

	b, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", name, err)
	}
	return b, nil
}

// Exists checks if a board with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
