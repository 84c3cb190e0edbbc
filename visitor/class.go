package visitor

import (
	"reflect"
	"sort"

	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

// Invocation records one handler instance: the occurrence it was created
// for, its coerced arguments, the node it fired on, the whole schema graph,
// and the constructed handler itself. Exactly one Invocation exists per
// (matching occurrence, class) pair; the engine hands the handler to
// exactly one dispatch call and then retains the Invocation only in the
// Results aggregator.
type Invocation struct {
	// Name is the directive name of the occurrence.
	Name string
	// Directive is the raw occurrence.
	Directive *schema.Directive
	// Args is the coerced argument mapping: exactly the declared argument
	// names when a definition exists, exactly the supplied names otherwise.
	Args map[string]cty.Value
	// Node is the graph node the occurrence is attached to.
	Node schema.Node
	// Schema is the whole graph, for cross-cutting handler effects.
	Schema *schema.Schema
	// Handler is the constructed handler instance.
	Handler any
}

// Class is a registered handler class: a constructor plus the capability
// set derived from the visitor interfaces its handler type implements. The
// set is computed exactly once, when the class is built.
type Class struct {
	construct func(*Invocation) any
	locations map[schema.Kind]bool
}

// dispatchInterfaces maps each dispatchable node kind to the visitor
// interface a handler type must implement to opt in.
var dispatchInterfaces = map[schema.Kind]reflect.Type{
	schema.KindSchema:      reflect.TypeFor[SchemaVisitor](),
	schema.KindObject:      reflect.TypeFor[ObjectVisitor](),
	schema.KindInterface:   reflect.TypeFor[InterfaceVisitor](),
	schema.KindInputObject: reflect.TypeFor[InputObjectVisitor](),
	schema.KindScalar:      reflect.TypeFor[ScalarVisitor](),
	schema.KindUnion:       reflect.TypeFor[UnionVisitor](),
	schema.KindEnum:        reflect.TypeFor[EnumVisitor](),
	schema.KindEnumValue:   reflect.TypeFor[EnumValueVisitor](),
	schema.KindField:       reflect.TypeFor[FieldVisitor](),
	schema.KindArgument:    reflect.TypeFor[ArgumentVisitor](),
	schema.KindInputField:  reflect.TypeFor[InputFieldVisitor](),
}

// NewClass builds a handler class from a constructor. The handler type V
// is inspected once for the visitor interfaces it implements; the resulting
// capability set decides, per node kind, whether occurrences of the class's
// directive cause an instance to be constructed at all.
func NewClass[V any](ctor func(*Invocation) V) *Class {
	handlerType := reflect.TypeFor[V]()
	locations := make(map[schema.Kind]bool, len(dispatchInterfaces))
	for kind, iface := range dispatchInterfaces {
		if handlerType.Implements(iface) {
			locations[kind] = true
		}
	}
	return &Class{
		construct: func(inv *Invocation) any { return ctor(inv) },
		locations: locations,
	}
}

// Interested reports whether the class's handler type reacts to the given
// node kind.
func (c *Class) Interested(k schema.Kind) bool {
	return c.locations[k]
}

// Locations returns the class's capability set in ascending kind order.
// A declaration-authoring step can use this to seed the permitted-locations
// list of a directive definition for the class's directive.
func (c *Class) Locations() []schema.Kind {
	kinds := make([]schema.Kind, 0, len(c.locations))
	for k := range c.locations {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Declaration builds a directive definition for this class under the given
// name, with its permitted locations seeded from the capability set.
func (c *Class) Declaration(name string, args ...*directive.ArgumentDef) *directive.Definition {
	return &directive.Definition{
		Name:      name,
		Arguments: args,
		Locations: c.Locations(),
	}
}

// Table maps directive names to handler classes. It is caller-supplied and
// the engine never mutates it; occurrences whose name is not a key are
// inert.
type Table map[string]*Class
