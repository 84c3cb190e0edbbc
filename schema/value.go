package schema

// ValueKind tags a raw literal node. These are the only literal shapes the
// engine understands; feeding any other tag to the decoder is fatal.
type ValueKind int

const (
	ValueNull ValueKind = iota + 1
	ValueInt
	ValueFloat
	ValueString
	ValueBoolean
	ValueEnum
	ValueList
	ValueObject
)

var valueKindNames = map[ValueKind]string{
	ValueNull:    "null",
	ValueInt:     "int",
	ValueFloat:   "float",
	ValueString:  "string",
	ValueBoolean: "boolean",
	ValueEnum:    "enum",
	ValueList:    "list",
	ValueObject:  "object",
}

// String returns the literal kind's name.
func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a raw literal as written in an annotation argument, before any
// decoding or coercion. Which fields are meaningful depends on Kind:
//
//   - ValueInt, ValueFloat: Raw holds the decimal text.
//   - ValueString, ValueEnum: Raw holds the text, passed through unchanged.
//   - ValueBoolean: Bool holds the value; Raw is not consulted.
//   - ValueList: List holds the ordered elements.
//   - ValueObject: Fields holds the field pairs in encounter order.
//   - ValueNull: no payload.
type Value struct {
	Kind   ValueKind
	Raw    string
	Bool   bool
	List   []*Value
	Fields []*ValueField
}

// ValueField is one (name, value) pair of an object literal.
type ValueField struct {
	Name  string
	Value *Value
}

// Convenience constructors for building literal trees in code.

// NullValue returns a null literal.
func NullValue() *Value { return &Value{Kind: ValueNull} }

// IntValue returns an integer literal with the given decimal text.
func IntValue(raw string) *Value { return &Value{Kind: ValueInt, Raw: raw} }

// FloatValue returns a float literal with the given decimal text.
func FloatValue(raw string) *Value { return &Value{Kind: ValueFloat, Raw: raw} }

// StringValue returns a string literal.
func StringValue(raw string) *Value { return &Value{Kind: ValueString, Raw: raw} }

// BooleanValue returns a boolean literal.
func BooleanValue(b bool) *Value { return &Value{Kind: ValueBoolean, Bool: b} }

// EnumSymbol returns an enum symbol literal; the symbol remains a textual
// identifier.
func EnumSymbol(name string) *Value { return &Value{Kind: ValueEnum, Raw: name} }

// ListValue returns a list literal preserving element order.
func ListValue(elems ...*Value) *Value { return &Value{Kind: ValueList, List: elems} }

// ObjectValue returns an object literal preserving field encounter order.
func ObjectValue(fields ...*ValueField) *Value { return &Value{Kind: ValueObject, Fields: fields} }
