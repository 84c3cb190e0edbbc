package schema

// Kind identifies the structural category of a node in the schema graph.
type Kind int

const (
	KindSchema Kind = iota + 1
	KindObject
	KindInterface
	KindInputObject
	KindScalar
	KindUnion
	KindEnum
	KindEnumValue
	KindField
	KindArgument
	KindInputField
)

// kindNames maps each Kind to its canonical lower-case name, which is also
// the spelling used in directive manifests.
var kindNames = map[Kind]string{
	KindSchema:      "schema",
	KindObject:      "object",
	KindInterface:   "interface",
	KindInputObject: "input_object",
	KindScalar:      "scalar",
	KindUnion:       "union",
	KindEnum:        "enum",
	KindEnumValue:   "enum_value",
	KindField:       "field",
	KindArgument:    "argument",
	KindInputField:  "input_field",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromName resolves a canonical kind name back to its Kind. The second
// return value is false when the name is not recognized.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Node is the common read surface of every vertex in the schema graph. The
// visitor engine only needs a node's kind tag and name to dispatch and to
// report errors; everything else is reached through the concrete types.
type Node interface {
	NodeKind() Kind
	NodeName() string
}
