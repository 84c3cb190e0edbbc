package visitor

import "sort"

// Results aggregates every handler instance created during one walk,
// indexed by directive name, for the caller to inspect afterward. It holds
// instance metadata only; ownership of the graph and of any mutation the
// handlers performed stays with the caller.
type Results struct {
	byName map[string][]*Invocation
	total  int
}

func newResults() *Results {
	return &Results{byName: make(map[string][]*Invocation)}
}

func (r *Results) add(inv *Invocation) {
	r.byName[inv.Name] = append(r.byName[inv.Name], inv)
	r.total++
}

// Handlers returns the invocations recorded for a directive name, in the
// order they were created during the walk. It returns nil when no handler
// fired for the name.
func (r *Results) Handlers(name string) []*Invocation {
	return r.byName[name]
}

// Names returns the directive names that fired at least once, sorted.
func (r *Results) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of handler instances created.
func (r *Results) Len() int {
	return r.total
}
