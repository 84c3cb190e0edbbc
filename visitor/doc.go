// Package visitor implements the annotation-driven dispatch engine: a
// single depth-first walk over a schema graph that finds directive
// occurrences carrying a registered name, coerces their arguments, and
// instantiates one handler per matching occurrence, invoking the handler's
// per-kind visit method with node-specific context.
//
// A handler class is registered through NewClass with a constructor; the
// class's capability set — which node kinds it reacts to — is derived once
// at construction from the visitor interfaces the handler type implements.
// A class is never instantiated for a node kind it did not opt into, and
// directive names absent from the caller's Table are inert.
//
// The walk is purely synchronous recursion with no suspension points; the
// context passed to Walk carries the logger and nothing else. The only
// failure a caller observes is a fatal literal decode or coercion error,
// which aborts the walk immediately with the offending occurrence and node
// named in the error.
package visitor
