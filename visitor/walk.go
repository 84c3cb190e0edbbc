package visitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/annotwalk/internal/ctxlog"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

// Walk performs the single depth-first traversal of the schema graph,
// dispatching handler instances for every recognized directive occurrence
// it encounters, and returns the aggregated instances indexed by directive
// name.
//
// The schema declaration is visited first, then every named type in
// declaration order, skipping reserved-prefixed names. Each named type is
// visited exactly once; union member types are deliberately not recursed
// into from their union, since they are plain references into the type
// table. Dispatch is sequential, in source order of the occurrences on each
// node.
//
// defs may be nil, in which case every occurrence is coerced untyped. The
// context carries the logger only; the walk has no suspension points and
// does not honor cancellation. The first fatal decode or coercion error
// aborts the walk with no partial result.
func Walk(ctx context.Context, s *schema.Schema, table Table, defs DefinitionSource) (*Results, error) {
	w := &walker{
		schema:  s,
		table:   table,
		defs:    defs,
		results: newResults(),
		logger:  ctxlog.FromContext(ctx),
	}

	if err := w.walkSchema(); err != nil {
		return nil, err
	}

	w.logger.Debug("Schema walk complete.", "handlers_created", w.results.Len())
	return w.results, nil
}

type walker struct {
	schema  *schema.Schema
	table   Table
	defs    DefinitionSource
	results *Results
	logger  *slog.Logger
}

func (w *walker) walkSchema() error {
	invs, err := w.resolve(w.schema, w.schema.Directives, schema.KindSchema)
	if err != nil {
		return err
	}
	for _, inv := range invs {
		inv.Handler.(SchemaVisitor).VisitSchema(&SchemaContext{Schema: w.schema})
	}

	for _, t := range w.schema.Types() {
		if schema.IsReserved(t.Name) {
			w.logger.Debug("Skipping reserved type.", "type", t.Name)
			continue
		}
		if err := w.walkType(t); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkType(t *schema.Type) error {
	switch t.Kind {
	case schema.KindObject:
		invs, err := w.resolve(t, t.Directives, schema.KindObject)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(ObjectVisitor).VisitObject(&ObjectContext{Object: t})
		}
		return w.walkFields(t)

	case schema.KindInterface:
		invs, err := w.resolve(t, t.Directives, schema.KindInterface)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(InterfaceVisitor).VisitInterface(&InterfaceContext{Interface: t})
		}
		return w.walkFields(t)

	case schema.KindInputObject:
		invs, err := w.resolve(t, t.Directives, schema.KindInputObject)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(InputObjectVisitor).VisitInputObject(&InputObjectContext{InputObject: t})
		}
		for _, f := range t.InputFields {
			finvs, err := w.resolve(f, f.Directives, schema.KindInputField)
			if err != nil {
				return err
			}
			for _, inv := range finvs {
				inv.Handler.(InputFieldVisitor).VisitInputField(&InputFieldContext{Field: f, Parent: t})
			}
		}
		return nil

	case schema.KindScalar:
		invs, err := w.resolve(t, t.Directives, schema.KindScalar)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(ScalarVisitor).VisitScalar(&ScalarContext{Scalar: t})
		}
		return nil

	case schema.KindUnion:
		// Member types are references into the type table and are visited
		// through it, not from here.
		invs, err := w.resolve(t, t.Directives, schema.KindUnion)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(UnionVisitor).VisitUnion(&UnionContext{Union: t})
		}
		return nil

	case schema.KindEnum:
		invs, err := w.resolve(t, t.Directives, schema.KindEnum)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(EnumVisitor).VisitEnum(&EnumContext{Enum: t})
		}
		for _, v := range t.Values {
			vinvs, err := w.resolve(v, v.Directives, schema.KindEnumValue)
			if err != nil {
				return err
			}
			for _, inv := range vinvs {
				inv.Handler.(EnumValueVisitor).VisitEnumValue(&EnumValueContext{Value: v, Enum: t})
			}
		}
		return nil

	default:
		return fmt.Errorf("type %q has unexpected kind %s", t.Name, t.Kind)
	}
}

func (w *walker) walkFields(t *schema.Type) error {
	for _, f := range t.Fields {
		invs, err := w.resolve(f, f.Directives, schema.KindField)
		if err != nil {
			return err
		}
		for _, inv := range invs {
			inv.Handler.(FieldVisitor).VisitField(&FieldContext{Field: f, Parent: t})
		}

		for _, a := range f.Arguments {
			ainvs, err := w.resolve(a, a.Directives, schema.KindArgument)
			if err != nil {
				return err
			}
			for _, inv := range ainvs {
				inv.Handler.(ArgumentVisitor).VisitArgument(&ArgumentContext{Argument: a, Field: f, Parent: t})
			}
		}
	}
	return nil
}

// resolve returns the ordered handler instances to fire for one node at
// one dispatch kind. Occurrences whose name is not registered are inert;
// classes whose capability set lacks the kind are skipped before any
// instance is constructed. Each surviving occurrence is coerced, built,
// and recorded in the aggregator before being returned for dispatch.
func (w *walker) resolve(node schema.Node, directives []*schema.Directive, kind schema.Kind) ([]*Invocation, error) {
	var invs []*Invocation
	for _, occ := range directives {
		class, ok := w.table[occ.Name]
		if !ok {
			continue
		}
		if !class.Interested(kind) {
			continue
		}

		args, err := w.coerce(occ)
		if err != nil {
			return nil, fmt.Errorf("directive @%s on %s %q: %w", occ.Name, kind, node.NodeName(), err)
		}

		inv := &Invocation{
			Name:      occ.Name,
			Directive: occ,
			Args:      args,
			Node:      node,
			Schema:    w.schema,
		}
		inv.Handler = class.construct(inv)
		w.results.add(inv)
		invs = append(invs, inv)

		w.logger.Debug("Dispatching directive handler.", "directive", occ.Name, "kind", kind.String(), "node", node.NodeName())
	}
	return invs, nil
}

func (w *walker) coerce(occ *schema.Directive) (map[string]cty.Value, error) {
	if w.defs == nil {
		return coerceArguments(occ, nil)
	}
	def, ok := w.defs.Definition(occ.Name)
	if !ok {
		return coerceArguments(occ, nil)
	}
	for _, arg := range occ.Arguments {
		if def.Argument(arg.Name) == nil {
			w.logger.Debug("Ignoring undeclared directive argument.", "directive", occ.Name, "argument", arg.Name)
		}
	}
	return coerceArguments(occ, def)
}
