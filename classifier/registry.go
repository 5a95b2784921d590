package classifier

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a classifier from Params.
type Factory func(p Params) (Classifier, error)

var (
	registryMu sync.RWMutex
	registry   = map[Kind]map[string]Factory{}
)

// Register makes a factory available under (kind, name). It panics if
// called twice for the same pair or with a nil factory.
func Register(kind Kind, name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f == nil {
		panic("classifier: Register factory is nil")
	}
	byName, ok := registry[kind]
	if !ok {
		byName = map[string]Factory{}
		registry[kind] = byName
	}
	if _, dup := byName[name]; dup {
		panic(fmt.Sprintf("classifier: Register called twice for %s/%s", kind, name))
	}
	byName[name] = f
}

// New builds the classifier registered under (kind, name).
func New(kind Kind, name string, p Params) (Classifier, error) {
	registryMu.RLock()
	byName, ok := registry[kind]
	var f Factory
	if ok {
		f, ok = byName[name]
	}
	registryMu.RUnlock()

	if byName == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s/%q", ErrUnknownClassifier, kind, name)
	}

	return f(p)
}

// Names returns the sorted names registered for kind.
func Names(kind Kind) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry[kind]))
	for name := range registry[kind] {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
