package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the process-wide table of record types. Types register
// during package initialisation; the first lookup seals the registry and
// any later Register panics. After sealing it is read-only and safe for
// concurrent use.
type Registry struct {
	mu     sync.Mutex
	once   sync.Once
	sealed bool
	types  map[string]*Type
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register adds a type table. It panics on duplicates or after sealing,
// both of which are programming errors in generated tables.
func (r *Registry) Register(t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		panic(fmt.Sprintf("schema: Register(%s) after registry was sealed", t.Name))
	}
	if _, dup := r.types[t.Name]; dup {
		panic(fmt.Sprintf("schema: type %s registered twice", t.Name))
	}
	t.index()
	r.types[t.Name] = t
}

// Seal freezes the registry. Lookups call it implicitly.
func (r *Registry) Seal() {
	r.once.Do(func() {
		r.mu.Lock()
		r.sealed = true
		r.mu.Unlock()
	})
}

// Sealed reports whether the registry has been frozen.
func (r *Registry) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

// Lookup returns the table for typeName.
func (r *Registry) Lookup(typeName string) (*Type, error) {
	r.Seal()
	t, ok := r.types[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	return t, nil
}

// FieldsOf returns the ordered field descriptors of typeName. The returned
// slice is shared and must not be modified.
func (r *Registry) FieldsOf(typeName string) ([]Field, error) {
	t, err := r.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return t.Fields, nil
}

// ChoiceGroup returns the concrete field names sharing the logical choice
// name, e.g. ("Claim.item", "serviced") -> [servicedDate servicedPeriod].
func (r *Registry) ChoiceGroup(typeName, logical string) ([]string, error) {
	t, err := r.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	f, ok := t.Field(logical)
	if !ok || !f.IsChoice() {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotChoice, typeName, logical)
	}
	return f.JSONNames(), nil
}

// Resolve maps a concrete JSON key on typeName to its field descriptor and
// choice alternative (empty for non-choice fields).
func (r *Registry) Resolve(typeName, jsonName string) (Field, string, error) {
	t, err := r.Lookup(typeName)
	if err != nil {
		return Field{}, "", err
	}
	f, alt, ok := t.Resolve(jsonName)
	if !ok {
		return Field{}, "", fmt.Errorf("unknown field %s.%s", typeName, jsonName)
	}
	return f, alt, nil
}

// Names returns all registered type names, sorted.
func (r *Registry) Names() []string {
	r.Seal()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resources returns the names of registered resource types, sorted.
func (r *Registry) Resources() []string {
	r.Seal()
	var names []string
	for n, t := range r.types {
		if t.IsResource() {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
