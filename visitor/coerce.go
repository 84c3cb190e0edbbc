package visitor

import (
	"fmt"

	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/literal"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// DefinitionSource is the declared-directives collaborator queried by name
// once per occurrence. *directive.Registry implements it. A nil source
// means every occurrence is coerced untyped.
type DefinitionSource interface {
	Definition(name string) (*directive.Definition, bool)
}

// coerceArguments produces the coerced argument mapping for one occurrence.
//
// With a definition the result carries exactly the declared argument names:
// supplied literals are decoded and converted to the declared type, omitted
// arguments take their declared default or a typed null. Supplied arguments
// that the definition does not declare are ignored; rejecting them is the
// declaring authority's policy, not this engine's.
//
// Without a definition each supplied literal is decoded independently and
// bound to its argument name as given.
func coerceArguments(occ *schema.Directive, def *directive.Definition) (map[string]cty.Value, error) {
	if def == nil {
		args := make(map[string]cty.Value, len(occ.Arguments))
		for _, arg := range occ.Arguments {
			decoded, err := literal.Decode(arg.Value)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
			}
			args[arg.Name] = decoded
		}
		return args, nil
	}

	args := make(map[string]cty.Value, len(def.Arguments))
	for _, argDef := range def.Arguments {
		raw := occ.Argument(argDef.Name)
		if raw == nil {
			if argDef.Default != nil {
				args[argDef.Name] = *argDef.Default
			} else {
				args[argDef.Name] = cty.NullVal(argDef.Type)
			}
			continue
		}

		decoded, err := literal.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", argDef.Name, err)
		}
		converted, err := convert.Convert(decoded, argDef.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %q: cannot convert to %s: %w",
				argDef.Name, argDef.Type.FriendlyName(), err)
		}
		args[argDef.Name] = converted
	}
	return args, nil
}
