// Package manifest loads declared directive definitions from HCL files.
//
// A manifest declares, per directive name, the typed arguments an
// occurrence may supply (with optional defaults) and the node kinds the
// directive may be attached to:
//
//	directive "auth" {
//	  description = "Guards a resolver behind a role."
//	  locations   = ["object", "field"]
//
//	  arg "requires" {
//	    type    = string
//	    default = "ADMIN"
//	  }
//	}
//
// Loading produces a directive.Registry, which is the declared-directives
// collaborator the visitor engine consults for typed argument coercion.
package manifest
