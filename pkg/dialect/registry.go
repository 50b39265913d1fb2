package dialect

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	profilesMu sync.RWMutex
	profiles   = make(map[string]*Profile)
)

// ErrUnknownDialect is returned when a named dialect is not registered.
var ErrUnknownDialect = errors.New("unknown dialect")

// Get returns a registered profile by name (case-insensitive).
func Get(name string) (*Profile, bool) {
	profilesMu.RLock()
	defer profilesMu.RUnlock()
	p, ok := profiles[strings.ToLower(name)]
	return p, ok
}

// Register registers a profile in the global registry.
// Called by preset implementations in their init() functions.
func Register(p *Profile) {
	profilesMu.Lock()
	defer profilesMu.Unlock()
	profiles[strings.ToLower(p.Name)] = p
}

// List returns all registered dialect names (sorted).
func List() []string {
	profilesMu.RLock()
	defer profilesMu.RUnlock()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
