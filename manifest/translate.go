// This file contains the logic for translating decoded HCL directive blocks
// into the format-agnostic directive model, including parsing HCL type
// expressions (e.g. `string`, `list(number)`) into cty.Type objects.

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/internal/ctxlog"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateDirective converts an HCL directive block into the agnostic model.
func translateDirective(ctx context.Context, block *directiveBlock) (*directive.Definition, error) {
	def := &directive.Definition{
		Name:        block.Name,
		Description: block.Description,
	}

	for _, loc := range block.Locations {
		kind, ok := schema.KindFromName(loc)
		if !ok {
			return nil, fmt.Errorf("in directive '%s': unknown location %q", block.Name, loc)
		}
		def.Locations = append(def.Locations, kind)
	}

	for _, arg := range block.Args {
		translated, err := translateArgDefinition(ctx, arg, block.Name)
		if err != nil {
			return nil, err
		}
		if def.Argument(translated.Name) != nil {
			return nil, fmt.Errorf("in directive '%s': argument '%s' declared twice", block.Name, arg.Name)
		}
		def.Arguments = append(def.Arguments, translated)
	}

	return def, nil
}

// translateArgDefinition converts one arg block, parsing its type expression
// and evaluating its default against the declared type.
func translateArgDefinition(ctx context.Context, arg *argBlock, directiveName string) (*directive.ArgumentDef, error) {
	parsedType, err := typeExprToCtyType(ctx, arg.Type)
	if err != nil {
		return nil, fmt.Errorf("in directive '%s', argument '%s': %w", directiveName, arg.Name, err)
	}

	var defaultVal *cty.Value
	if isExprDefined(arg.Default) {
		val, diags := arg.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid default value for argument '%s' in directive '%s': %w", arg.Name, directiveName, diags)
		}
		if !val.IsNull() {
			converted, err := convert.Convert(val, parsedType)
			if err != nil {
				return nil, fmt.Errorf("default value for argument '%s' in directive '%s' does not match type %s: %w",
					arg.Name, directiveName, parsedType.FriendlyName(), err)
			}
			defaultVal = &converted
		}
	}

	return &directive.ArgumentDef{
		Name:        arg.Name,
		Type:        parsedType,
		Description: arg.Description,
		Default:     defaultVal,
	}, nil
}

// isExprDefined checks whether an HCL expression was actually present in the
// source. The decoder populates omitted optional attributes with non-nil,
// zero-width expression objects, so a nil check is insufficient; a real
// attribute occupies bytes in the file.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	return exprRange.End.Byte > exprRange.Start.Byte
}

// typeExprToCtyType converts an HCL type expression into its cty.Type equivalent.
func typeExprToCtyType(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Type expression is nil, defaulting to any.")
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a function call.", "call", v.Name)
		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type constructors (list, map, set) require exactly one argument, got %d", len(v.Args))
		}

		elementType, err := typeExprToCtyType(ctx, v.Args[0])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		if elementType == cty.DynamicPseudoType {
			return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
		}

		switch v.Name {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor function %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		// Primitive type identifiers like `string` or `number`.
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		switch rootName {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", rootName)
		}

	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
