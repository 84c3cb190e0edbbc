package directive

import (
	"fmt"
	"log/slog"
	"sort"
)

// Registry holds the declared directive definitions for one application
// instance, keyed by directive name.
type Registry struct {
	definitions map[string]*Definition
}

// NewRegistry creates and initializes an empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]*Definition)}
}

// Register adds a definition. It panics if the name is already registered;
// colliding declarations for one directive name are a programming error at
// startup, not a runtime condition.
func (r *Registry) Register(def *Definition) {
	if _, exists := r.definitions[def.Name]; exists {
		panic(fmt.Sprintf("directive definition with name '%s' already registered", def.Name))
	}
	slog.Debug("Registering directive definition.", "name", def.Name, "args", len(def.Arguments))
	r.definitions[def.Name] = def
}

// Definition looks a declared directive up by name. The second return value
// is false when the name has no declaration, which switches coercion for
// that name into untyped mode.
func (r *Registry) Definition(name string) (*Definition, bool) {
	def, ok := r.definitions[name]
	return def, ok
}

// Names returns the registered directive names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.definitions)
}
