package icon

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"svg-sprite-generator/internal/match"
)

// ErrIconNotFound is returned when a lookup matches no registered icon.
var ErrIconNotFound = errors.New("icon not found")

// Library is a registry of icon definitions. It is safe for concurrent use.
type Library struct {
	mu    sync.RWMutex
	icons map[Lookup]*Definition
}

// NewLibrary creates a library containing the given definitions.
func NewLibrary(defs ...Definition) *Library {
	l := &Library{icons: make(map[Lookup]*Definition)}
	l.Add(defs...)

	return l
}

// Add registers definitions. A definition replaces an earlier one with the same lookup.
func (l *Library) Add(defs ...Definition) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.icons == nil {
		l.icons = make(map[Lookup]*Definition)
	}

	for i := range defs {
		def := defs[i]
		l.icons[def.Lookup] = &def
	}
}

// Find returns the definition registered for lookup.
func (l *Library) Find(lookup Lookup) (*Definition, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	def, ok := l.icons[lookup]

	return def, ok
}

// Len returns the number of registered icons.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.icons)
}

// Suggest returns up to limit registered lookups close to lookup: the same
// icon in other styles first, then similar names with the same prefix.
func (l *Library) Suggest(lookup Lookup, limit int) []Lookup {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var (
		res   []Lookup
		names []string
	)

	for lk := range l.icons {
		switch {
		case lk.IconName == lookup.IconName && lk.Prefix != lookup.Prefix:
			res = append(res, lk)
		case lk.Prefix == lookup.Prefix:
			names = append(names, lk.IconName)
		}
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Prefix < res[j].Prefix })
	sort.Strings(names)

	for _, name := range match.Suggest(lookup.IconName, names, limit) {
		res = append(res, Lookup{Prefix: lookup.Prefix, IconName: name})
	}

	if len(res) > limit {
		res = res[:limit]
	}

	return res
}

func notFound(lookup Lookup, suggestions []Lookup) error {
	if len(suggestions) == 0 {
		return fmt.Errorf("%w: %s", ErrIconNotFound, lookup)
	}

	alts := make([]string, len(suggestions))
	for i, s := range suggestions {
		alts[i] = s.String()
	}

	return fmt.Errorf("%w: %s (did you mean %s?)", ErrIconNotFound, lookup, strings.Join(alts, ", "))
}

// libraryFile is the YAML layout of an icon library.
type libraryFile struct {
	Icons []Definition `yaml:"icons"`
}

// LoadFile reads a YAML icon library and adds its definitions to l.
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read icon library %s: %w", path, err)
	}

	if err := l.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Parse parses YAML icon definitions and adds them to l.
func (l *Library) Parse(data []byte) error {
	var lf libraryFile

	if err := yaml.Unmarshal(data, &lf); err != nil {
		return fmt.Errorf("failed to parse icon library YAML: %w", err)
	}

	for i, def := range lf.Icons {
		if err := def.validate(); err != nil {
			return fmt.Errorf("icon %d: %w", i, err)
		}
	}

	l.Add(lf.Icons...)

	return nil
}

func (d *Definition) validate() error {
	if d.Prefix == "" || d.IconName == "" {
		return fmt.Errorf("icon %q has an empty prefix or name", d.Lookup)
	}

	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("icon %s has invalid size %dx%d", d.Lookup, d.Width, d.Height)
	}

	return nil
}
