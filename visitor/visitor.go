package visitor

import (
	"github.com/vk/annotwalk/schema"
)

// Handlers opt into node kinds by implementing the per-kind interfaces
// below on the type their class constructor returns. Not implementing an
// interface means "not interested": no instance is created and no dispatch
// occurs for occurrences at that kind.

// SchemaVisitor reacts to directives on the schema declaration itself.
type SchemaVisitor interface {
	VisitSchema(sc *SchemaContext)
}

// ObjectVisitor reacts to directives on object types.
type ObjectVisitor interface {
	VisitObject(oc *ObjectContext)
}

// InterfaceVisitor reacts to directives on interface types.
type InterfaceVisitor interface {
	VisitInterface(ic *InterfaceContext)
}

// InputObjectVisitor reacts to directives on input object types.
type InputObjectVisitor interface {
	VisitInputObject(ic *InputObjectContext)
}

// ScalarVisitor reacts to directives on scalar types.
type ScalarVisitor interface {
	VisitScalar(sc *ScalarContext)
}

// UnionVisitor reacts to directives on union types.
type UnionVisitor interface {
	VisitUnion(uc *UnionContext)
}

// EnumVisitor reacts to directives on enum types.
type EnumVisitor interface {
	VisitEnum(ec *EnumContext)
}

// EnumValueVisitor reacts to directives on enum values.
type EnumValueVisitor interface {
	VisitEnumValue(vc *EnumValueContext)
}

// FieldVisitor reacts to directives on object and interface fields.
type FieldVisitor interface {
	VisitField(fc *FieldContext)
}

// ArgumentVisitor reacts to directives on field arguments.
type ArgumentVisitor interface {
	VisitArgument(ac *ArgumentContext)
}

// InputFieldVisitor reacts to directives on input object fields.
type InputFieldVisitor interface {
	VisitInputField(fc *InputFieldContext)
}

// SchemaContext is passed to VisitSchema.
type SchemaContext struct {
	Schema *schema.Schema
}

// ObjectContext is passed to VisitObject.
type ObjectContext struct {
	Object *schema.Type
}

// InterfaceContext is passed to VisitInterface.
type InterfaceContext struct {
	Interface *schema.Type
}

// InputObjectContext is passed to VisitInputObject.
type InputObjectContext struct {
	InputObject *schema.Type
}

// ScalarContext is passed to VisitScalar.
type ScalarContext struct {
	Scalar *schema.Type
}

// UnionContext is passed to VisitUnion. Member types are references into
// the schema's type table and are visited independently through it; a
// handler needing member detail resolves Union.Members itself.
type UnionContext struct {
	Union *schema.Type
}

// EnumContext is passed to VisitEnum.
type EnumContext struct {
	Enum *schema.Type
}

// EnumValueContext is passed to VisitEnumValue with the enclosing enum.
type EnumValueContext struct {
	Value *schema.EnumValue
	Enum  *schema.Type
}

// FieldContext is passed to VisitField with the enclosing type.
type FieldContext struct {
	Field  *schema.Field
	Parent *schema.Type
}

// ArgumentContext is passed to VisitArgument with both the enclosing field
// and the enclosing type.
type ArgumentContext struct {
	Argument *schema.Argument
	Field    *schema.Field
	Parent   *schema.Type
}

// InputFieldContext is passed to VisitInputField with the enclosing input
// object type.
type InputFieldContext struct {
	Field  *schema.InputField
	Parent *schema.Type
}
