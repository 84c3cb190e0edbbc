package schema

import (
	"fmt"
	"strings"
)

// ReservedPrefix marks introspection and other system-owned type names.
// Types whose name carries this prefix are never visited.
const ReservedPrefix = "__"

// IsReserved reports whether a type name belongs to the reserved namespace.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}

// Schema is the root of the graph: the directives attached to the schema
// declaration itself plus the flattened name→type table in declaration
// order. Cross-referenced types (union members, field type names) are plain
// name references into this table; the table is the single owner of every
// named type.
type Schema struct {
	// Directives are the occurrences attached to the schema declaration.
	Directives []*Directive

	types []*Type
	index map[string]*Type
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{index: make(map[string]*Type)}
}

// AddType appends a named type to the table, preserving declaration order.
// It panics if a type with the same name was already added, mirroring the
// duplicate-registration contract of the directive registry.
func (s *Schema) AddType(t *Type) *Schema {
	if _, exists := s.index[t.Name]; exists {
		panic(fmt.Sprintf("schema: type %q already declared", t.Name))
	}
	s.types = append(s.types, t)
	s.index[t.Name] = t
	return s
}

// Types returns the type table in declaration order. The returned slice is
// shared; callers must not reorder it.
func (s *Schema) Types() []*Type {
	return s.types
}

// Type looks a named type up in the table. The second return value is false
// when the name is not declared.
func (s *Schema) Type(name string) (*Type, bool) {
	t, ok := s.index[name]
	return t, ok
}

// Len returns the number of declared types.
func (s *Schema) Len() int {
	return len(s.types)
}

// NodeKind implements Node.
func (s *Schema) NodeKind() Kind { return KindSchema }

// NodeName implements Node. The schema declaration is anonymous; it reports
// the fixed name "schema".
func (s *Schema) NodeName() string { return "schema" }
