package orm

import (
	"fmt"
	"maps"
	"sync"
)

// MorphRegistry maps morph aliases (the strings stored in a polymorphic
// "type" column) to entity identifiers.
//
// The zero value is ready to use. All methods are safe for concurrent use.
type MorphRegistry struct {
	mu      sync.RWMutex
	aliases map[string]string // alias -> identifier
	latest  map[string]string // identifier -> alias upserted last
}

var globalMorphMap = &MorphRegistry{}

// MorphMap returns the process-wide registry consulted by MorphToMany,
// MorphedByMany and MorphClass.
func MorphMap() *MorphRegistry { return globalMorphMap }

// Upsert merges entries into the registry. Existing aliases are
// overwritten; aliases not present in entries are left untouched.
// No entry is written when any of them is invalid.
func (r *MorphRegistry) Upsert(entries map[string]string) error {
	if err := validateMorphEntries(entries); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	for alias, identifier := range entries {
		r.aliases[alias] = identifier
		r.latest[identifier] = alias
	}
	return nil
}

// Replace discards every registered alias and installs entries instead.
func (r *MorphRegistry) Replace(entries map[string]string) error {
	if err := validateMorphEntries(entries); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases = make(map[string]string, len(entries))
	r.latest = make(map[string]string, len(entries))
	for alias, identifier := range entries {
		r.aliases[alias] = identifier
		r.latest[identifier] = alias
	}
	return nil
}

// Reset removes every registered alias.
func (r *MorphRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases = nil
	r.latest = nil
}

// All returns a copy of the alias -> identifier table.
func (r *MorphRegistry) All() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.aliases))
	maps.Copy(out, r.aliases)
	return out
}

// Lookup returns the identifier registered under alias.
func (r *MorphRegistry) Lookup(alias string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identifier, ok := r.aliases[alias]
	return identifier, ok
}

// AliasFor returns the alias most recently upserted for identifier, as
// long as that alias still points at it. Otherwise identifier itself is
// returned.
func (r *MorphRegistry) AliasFor(identifier string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if alias, ok := r.latest[identifier]; ok && r.aliases[alias] == identifier {
		return alias
	}
	return identifier
}

// Len returns the number of registered aliases.
func (r *MorphRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.aliases)
}

func (r *MorphRegistry) init() {
	if r.aliases == nil {
		r.aliases = make(map[string]string)
	}
	if r.latest == nil {
		r.latest = make(map[string]string)
	}
}

func validateMorphEntries(entries map[string]string) error {
	for alias, identifier := range entries {
		if alias == "" || identifier == "" {
			return fmt.Errorf("%w: %q -> %q", ErrInvalidMorphAlias, alias, identifier)
		}
	}
	return nil
}
