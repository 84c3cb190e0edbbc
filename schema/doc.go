// Package schema defines the typed, heterogeneous graph of declaration
// nodes that the visitor engine walks.
//
// A Schema owns a flattened, declaration-ordered table of named types.
// Each type is a tagged union over the structural kinds (object, interface,
// input object, scalar, union, enum) and owns its kind-specific children:
// objects and interfaces own fields, fields own arguments, input objects
// own input fields, enums own enum values. Any node may carry an ordered
// list of Directive occurrences, which is what the visitor engine dispatches
// on.
//
// The package also defines the raw literal Value AST used for directive
// arguments as they appear in source, before any typing or coercion is
// applied. Decoding that AST into native values is the job of the literal
// package.
//
// Schema construction is the caller's concern; this package deliberately
// parses nothing.
package schema
