package directive

import (
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

// Definition is the declared schema for one directive name.
type Definition struct {
	Name        string
	Description string
	// Arguments are the declared parameters in declaration order. Typed
	// coercion produces exactly these names, filling omitted optional
	// arguments from their defaults.
	Arguments []*ArgumentDef
	// Locations are the node kinds the directive may be attached to.
	Locations []schema.Kind
}

// Argument returns the declared argument with the given name, or nil.
func (d *Definition) Argument(name string) *ArgumentDef {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// AllowsLocation reports whether the definition permits attachment to the
// given node kind.
func (d *Definition) AllowsLocation(k schema.Kind) bool {
	for _, loc := range d.Locations {
		if loc == k {
			return true
		}
	}
	return false
}

// ArgumentDef declares a single directive argument: its name, the cty type
// raw literals are converted into, and an optional default used when an
// occurrence omits the argument.
type ArgumentDef struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
}
