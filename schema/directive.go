package schema

// Directive is a single annotation occurrence as found on one node: a name
// plus the ordered argument list from source. A node may carry zero, one,
// or many occurrences, including repeats of the same name; their slice
// order is their source order and determines dispatch order.
type Directive struct {
	Name      string
	Arguments []*DirectiveArgument
}

// DirectiveArgument is one (name, raw literal) pair of an occurrence.
type DirectiveArgument struct {
	Name  string
	Value *Value
}

// Argument returns the raw literal supplied for the given argument name,
// or nil when the occurrence does not supply it.
func (d *Directive) Argument(name string) *Value {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg.Value
		}
	}
	return nil
}
