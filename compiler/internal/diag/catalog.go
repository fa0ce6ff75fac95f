package diag

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed codes.yaml
var codesYAML []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `yaml:"id"`    // e.g., "GCE0001"
	Title string `yaml:"title"` // short human title e.g., "unknown name"
	Help  string `yaml:"help"`  // optional default help text
}

// Registry is the top-level catalog format, one section per domain.
type Registry struct {
	Resolve map[string]CodeEntry `yaml:"resolve"`
	Type    map[string]CodeEntry `yaml:"type"`
	Lint    map[string]CodeEntry `yaml:"lint"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesYAML) == 0 {
			return // empty catalog is allowed
		}
		regErr = yaml.Unmarshal(codesYAML, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
// Domain is one of: "resolve", "type", "lint".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var section map[string]CodeEntry
	switch domain {
	case "resolve":
		section = reg.Resolve
	case "type":
		section = reg.Type
	case "lint":
		section = reg.Lint
	}
	ce, ok := section[key]
	return ce, ok
}

// MustLookup returns the entry if found; otherwise a placeholder with the
// provided defaultID and title, so codes stay stable if the catalog drifts.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
