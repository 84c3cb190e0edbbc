// Package length provides a reusable handler for the @length directive,
// which enforces a maximum length on string results of a field resolver
// and records the limit on annotated input fields.
package length

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/visitor"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DirectiveName is the annotation name this package registers under.
const DirectiveName = "length"

// ErrTooLong is returned by wrapped resolvers when a string result exceeds
// the declared maximum.
var ErrTooLong = errors.New("value exceeds maximum length")

// Handler enforces the maximum for one @length occurrence.
type Handler struct {
	max int64
}

// New constructs the handler for one occurrence. A missing or null `max`
// disables the limit.
func New(inv *visitor.Invocation) *Handler {
	h := &Handler{max: -1}
	if v, ok := inv.Args["max"]; ok && !v.IsNull() {
		var max int64
		if err := gocty.FromCtyValue(v, &max); err == nil {
			h.max = max
		}
	}
	return h
}

// VisitField wraps the annotated field's resolver so that string results
// longer than the maximum fail.
func (h *Handler) VisitField(fc *visitor.FieldContext) {
	if h.max < 0 {
		return
	}
	field := fc.Field
	next := field.Resolver
	field.Resolver = func(ctx context.Context, source cty.Value) (cty.Value, error) {
		if next == nil {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		result, err := next(ctx, source)
		if err != nil {
			return cty.NilVal, err
		}
		if !result.IsNull() && result.Type() == cty.String && int64(len(result.AsString())) > h.max {
			return cty.NilVal, fmt.Errorf("%w: field %q allows at most %d characters", ErrTooLong, field.Name, h.max)
		}
		return result, nil
	}
}

// VisitInputField records the maximum on the annotated input field so that
// input validation layers can enforce it.
func (h *Handler) VisitInputField(fc *visitor.InputFieldContext) {
	if h.max < 0 {
		return
	}
	fc.Field.MaxLength = h.max
}

// Max returns the maximum this occurrence enforces, or -1 when unlimited.
func (h *Handler) Max() int64 {
	return h.max
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

	reg.Register(class.Declaration(DirectiveName, &directive.ArgumentDef{
		Name:        "max",
		Type:        cty.Number,
		Description: "Maximum number of characters allowed.",
	}))
}
