package schema

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Resolver computes a field's value from its parent source value. The
// engine never invokes resolvers; the type exists so that handlers have a
// stable hook to wrap or replace when they rewrite field behavior.
type Resolver func(ctx context.Context, source cty.Value) (cty.Value, error)

// Type is one named entry in the schema's type table. It is a tagged union:
// Kind selects which of the kind-specific fields are meaningful. Fields is
// populated for objects and interfaces, InputFields for input objects,
// Members for unions, Values for enums; scalars carry none of them.
type Type struct {
	Kind        Kind
	Name        string
	Description string
	Directives  []*Directive

	Fields      []*Field
	InputFields []*InputField
	Members     []string
	Values      []*EnumValue
}

// NodeKind implements Node.
func (t *Type) NodeKind() Kind { return t.Kind }

// NodeName implements Node.
func (t *Type) NodeName() string { return t.Name }

// Field lives on an object or interface type and owns its arguments in
// declaration order. Resolver and DeprecationReason are the usual mutation
// targets for handlers.
type Field struct {
	Name              string
	Description       string
	TypeName          string
	Directives        []*Directive
	Arguments         []*Argument
	Resolver          Resolver
	DeprecationReason string
}

// NodeKind implements Node.
func (f *Field) NodeKind() Kind { return KindField }

// NodeName implements Node.
func (f *Field) NodeName() string { return f.Name }

// Argument is one declared argument of a field.
type Argument struct {
	Name        string
	Description string
	TypeName    string
	Directives  []*Directive
	Default     *Value
}

// NodeKind implements Node.
func (a *Argument) NodeKind() Kind { return KindArgument }

// NodeName implements Node.
func (a *Argument) NodeName() string { return a.Name }

// InputField is one field of an input object type. Unlike Field it carries
// no arguments and no resolver; MaxLength is the usual mutation target for
// validation handlers, with zero meaning no declared limit.
type InputField struct {
	Name        string
	Description string
	TypeName    string
	Directives  []*Directive
	Default     *Value
	MaxLength   int64
}

// NodeKind implements Node.
func (f *InputField) NodeKind() Kind { return KindInputField }

// NodeName implements Node.
func (f *InputField) NodeName() string { return f.Name }

// EnumValue is one member of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	Directives        []*Directive
	DeprecationReason string
}

// NodeKind implements Node.
func (v *EnumValue) NodeKind() Kind { return KindEnumValue }

// NodeName implements Node.
func (v *EnumValue) NodeName() string { return v.Name }
