// Package directive models declared annotation schemas: the externally
// supplied contract for a directive name, consisting of typed arguments
// with optional defaults and the set of node kinds the directive may be
// attached to.
//
// The presence of a Definition for a name switches argument coercion into
// typed mode for occurrences of that name; absence means occurrences are
// decoded untyped. Definitions are held in a Registry, which is the
// "declared directives" collaborator the visitor engine queries by name
// once per occurrence.
package directive
