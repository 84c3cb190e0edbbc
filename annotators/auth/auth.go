// Package auth provides a reusable handler for the @auth directive, which
// guards field resolvers behind a role carried in the request context. It
// can be attached to a single field or to a whole object type, in which
// case every field of the type is guarded.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/schema"
	"github.com/vk/annotwalk/visitor"
	"github.com/zclconf/go-cty/cty"
)

// DirectiveName is the annotation name this package registers under.
const DirectiveName = "auth"

// DefaultRole is the role required when an occurrence omits `requires`.
const DefaultRole = "ADMIN"

// ErrUnauthorized is returned by guarded resolvers when the context role
// does not satisfy the directive's requirement.
var ErrUnauthorized = errors.New("unauthorized")

// roleKey is an unexported context key type for the caller's role.
type roleKey struct{}

// WithRole returns a context carrying the caller's role.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromContext extracts the caller's role, or "" when none is set.
func RoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey{}).(string); ok {
		return role
	}
	return ""
}

// Handler guards resolvers for one @auth occurrence.
type Handler struct {
	requires string
}

// New constructs the handler for one occurrence.
func New(inv *visitor.Invocation) *Handler {
	requires := DefaultRole
	if v, ok := inv.Args["requires"]; ok && !v.IsNull() && v.Type() == cty.String {
		requires = v.AsString()
	}
	return &Handler{requires: requires}
}

// VisitObject guards every field of the annotated object type.
func (h *Handler) VisitObject(oc *visitor.ObjectContext) {
	for _, f := range oc.Object.Fields {
		h.guard(f)
	}
}

// VisitField guards the annotated field.
func (h *Handler) VisitField(fc *visitor.FieldContext) {
	h.guard(fc.Field)
}

// Requires returns the role this occurrence demands.
func (h *Handler) Requires() string {
	return h.requires
}

func (h *Handler) guard(f *schema.Field) {
	next := f.Resolver
	f.Resolver = func(ctx context.Context, source cty.Value) (cty.Value, error) {
		if RoleFromContext(ctx) != h.requires {
			return cty.NilVal, fmt.Errorf("%w: field %q requires role %s", ErrUnauthorized, f.Name, h.requires)
		}
		if next == nil {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		return next(ctx, source)
	}
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

	defaultRole := cty.StringVal(DefaultRole)
	reg.Register(class.Declaration(DirectiveName, &directive.ArgumentDef{
		Name:        "requires",
		Type:        cty.String,
		Description: "Role the caller must present.",
		Default:     &defaultRole,
	}))
}
