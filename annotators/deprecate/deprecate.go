// Package deprecate provides a reusable handler for the @deprecated
// directive. It records a deprecation reason on annotated fields and enum
// values.
package deprecate

import (
	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/visitor"
	"github.com/zclconf/go-cty/cty"
)

// DirectiveName is the annotation name this package registers under.
const DirectiveName = "deprecated"

// DefaultReason is recorded when an occurrence omits `reason`.
const DefaultReason = "No longer supported"

// Handler marks one annotated node as deprecated.
type Handler struct {
	reason string
}

// New constructs the handler for one occurrence.
func New(inv *visitor.Invocation) *Handler {
	reason := DefaultReason
	if v, ok := inv.Args["reason"]; ok && !v.IsNull() && v.Type() == cty.String {
		reason = v.AsString()
	}
	return &Handler{reason: reason}
}

// VisitField records the reason on the annotated field.
func (h *Handler) VisitField(fc *visitor.FieldContext) {
	fc.Field.DeprecationReason = h.reason
}

// VisitEnumValue records the reason on the annotated enum value.
func (h *Handler) VisitEnumValue(vc *visitor.EnumValueContext) {
	vc.Value.DeprecationReason = h.reason
}

// Reason returns the reason this occurrence records.
func (h *Handler) Reason() string {
	return h.reason
}

// Class builds the handler class for this package.
func Class() *visitor.Class {
	return visitor.NewClass(New)
}

// Register wires the class into a handler table and its self-declared
// definition into a directive registry.
func Register(table visitor.Table, reg *directive.Registry) {
	class := Class()
	table[DirectiveName] = class

	defaultReason := cty.StringVal(DefaultReason)
	reg.Register(class.Declaration(DirectiveName, &directive.ArgumentDef{
		Name:        "reason",
		Type:        cty.String,
		Description: "Why the element is deprecated.",
		Default:     &defaultReason,
	}))
}
