package kernel

// Bindings maps variable names to the term they were unified with. It is
// monotonically extended during a unification episode: Extend never
// mutates the receiver, it returns a new Bindings sharing the old entries,
// mirroring the teacher's copy-on-write Substitution.
//
// Resolution chains through at most len(Bindings) hops, since each name is
// bound at most once per episode and the occurs-check rejects cycles.
type Bindings struct {
	entries map[string]Term
	// order preserves insertion order so two equal-input unification
	// episodes walk bindings in identical order (determinism contract).
	order []string
}

// NewBindings returns an empty binding set.
func NewBindings() Bindings {
	return Bindings{entries: map[string]Term{}}
}

// Len reports how many variables are currently bound. Used by the
// Shared-Context Layer to snapshot and roll back scoped subcontexts.
func (b Bindings) Len() int { return len(b.order) }

// Lookup returns the term bound to a variable name, and whether it is bound.
func (b Bindings) Lookup(name string) (Term, bool) {
	t, ok := b.entries[name]
	return t, ok
}

// Extend returns a new Bindings with name bound to term. The receiver is
// left untouched.
func (b Bindings) Extend(name string, term Term) Bindings {
	entries := make(map[string]Term, len(b.entries)+1)
	for k, v := range b.entries {
		entries[k] = v
	}
	entries[name] = term

	order := make([]string, len(b.order), len(b.order)+1)
	copy(order, b.order)
	order = append(order, name)

	return Bindings{entries: entries, order: order}
}

// Walk follows variable bindings to the final, fully-resolved term. If
// term is not a variable, or is an unbound variable, it is returned as-is.
func (b Bindings) Walk(term Term) Term {
	v, ok := term.(Variable)
	if !ok {
		return term
	}
	bound, ok := b.Lookup(v.Name)
	if !ok {
		return term
	}
	return b.Walk(bound)
}

// Truncate returns a Bindings containing only the first n entries in
// insertion order, used by the Shared-Context Layer to roll a scoped
// subcontext back to a checkpoint taken with Len.
func (b Bindings) Truncate(n int) Bindings {
	if n >= len(b.order) {
		return b
	}
	entries := make(map[string]Term, n)
	order := make([]string, n)
	copy(order, b.order[:n])
	for _, name := range order {
		entries[name] = b.entries[name]
	}
	return Bindings{entries: entries, order: order}
}

// Resolve fully resolves a term, recursively walking and rebuilding
// compounds so that every reachable variable is replaced by its bound
// value (or left as an unbound Variable).
func (b Bindings) Resolve(term Term) Term {
	walked := b.Walk(term)
	c, ok := walked.(Compound)
	if !ok {
		return walked
	}
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = b.Resolve(a)
	}
	return Compound{Functor: c.Functor, Args: args}
}
