// Package literal decodes raw annotation-argument literals into cty values
// with no type knowledge. It is the untyped fallback path of argument
// coercion: when no declared directive definition exists for a name, each
// supplied literal is decoded structurally and bound to its argument name
// as given.
package literal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

// ErrUnsupportedKind reports a raw literal whose kind tag is outside the
// recognized set. It is the only fatal condition in the engine: the walk in
// progress is aborted and no partial result is returned.
var ErrUnsupportedKind = errors.New("unsupported literal kind")

// Decode converts a raw literal into a cty value.
//
// Null becomes a null of the dynamic pseudo-type; integer and float text is
// parsed from its decimal form; string and enum-symbol literals pass their
// text through unchanged; booleans carry their value directly and are not
// re-parsed from text. Lists decode element-wise into a tuple, preserving
// order. Object literals decode into an object value; a later duplicate
// field name overwrites an earlier one.
func Decode(v *schema.Value) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, fmt.Errorf("%w: nil literal", ErrUnsupportedKind)
	}

	switch v.Kind {
	case schema.ValueNull:
		return cty.NullVal(cty.DynamicPseudoType), nil

	case schema.ValueInt:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("malformed integer literal %q: %w", v.Raw, err)
		}
		return cty.NumberIntVal(n), nil

	case schema.ValueFloat:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("malformed float literal %q: %w", v.Raw, err)
		}
		return cty.NumberFloatVal(f), nil

	case schema.ValueString, schema.ValueEnum:
		return cty.StringVal(v.Raw), nil

	case schema.ValueBoolean:
		return cty.BoolVal(v.Bool), nil

	case schema.ValueList:
		if len(v.List) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v.List))
		for i, elem := range v.List {
			decoded, err := Decode(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in list element %d: %w", i, err)
			}
			elems = append(elems, decoded)
		}
		return cty.TupleVal(elems), nil

	case schema.ValueObject:
		if len(v.Fields) == 0 {
			return cty.EmptyObjectVal, nil
		}
		// Last occurrence of a duplicate field name wins.
		attrs := make(map[string]cty.Value, len(v.Fields))
		for _, field := range v.Fields {
			decoded, err := Decode(field.Value)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in object field %q: %w", field.Name, err)
			}
			attrs[field.Name] = decoded
		}
		return cty.ObjectVal(attrs), nil

	default:
		return cty.NilVal, fmt.Errorf("%w: %d", ErrUnsupportedKind, v.Kind)
	}
}
