package manifest

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes the top-level blocks of one manifest file.
type fileRoot struct {
	Directives []*directiveBlock `hcl:"directive,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// directiveBlock represents one `directive "name" { ... }` block.
type directiveBlock struct {
	Name        string      `hcl:"name,label"`
	Description string      `hcl:"description,optional"`
	Locations   []string    `hcl:"locations,optional"`
	Args        []*argBlock `hcl:"arg,block"`
}

// argBlock represents one `arg "name" { ... }` block inside a directive.
type argBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
}
