package kernel

// Unify attempts to make a and b structurally identical, threading and
// extending bindings. It is a pure function: it never mutates bindings,
// never performs I/O, and never shares state across calls.
//
// Determinism: compound children are unified left-to-right; two calls with
// equal inputs walk bindings in identical insertion order (spec §4.1).
func Unify(a, b Term, bindings Bindings) (Bindings, error) {
	wa := bindings.Walk(a)
	wb := bindings.Walk(b)

	if va, ok := wa.(Variable); ok {
		return bindVariable(va, wb, bindings)
	}
	if vb, ok := wb.(Variable); ok {
		return bindVariable(vb, wa, bindings)
	}

	switch ta := wa.(type) {
	case Atom:
		tb, ok := wb.(Atom)
		if !ok {
			return bindings, &UnifyError{Kind: StructuralMismatch, A: wa, B: wb}
		}
		if ta.Value != tb.Value {
			return bindings, &UnifyError{Kind: AtomMismatch, A: wa, B: wb}
		}
		return bindings, nil

	case Compound:
		tb, ok := wb.(Compound)
		if !ok {
			return bindings, &UnifyError{Kind: StructuralMismatch, A: wa, B: wb}
		}
		if ta.Functor != tb.Functor {
			return bindings, &UnifyError{Kind: FunctorMismatch, A: wa, B: wb}
		}
		if len(ta.Args) != len(tb.Args) {
			return bindings, &UnifyError{Kind: ArityMismatch, A: wa, B: wb}
		}
		current := bindings
		for i := range ta.Args {
			var err error
			current, err = Unify(ta.Args[i], tb.Args[i], current)
			if err != nil {
				return bindings, err
			}
		}
		return current, nil

	default:
		return bindings, &UnifyError{Kind: StructuralMismatch, A: wa, B: wb}
	}
}

// bindVariable binds v to other after an occurs-check, unless v and other
// resolve to the same variable (in which case unification trivially
// succeeds without extending bindings).
func bindVariable(v Variable, other Term, bindings Bindings) (Bindings, error) {
	if ov, ok := other.(Variable); ok && ov.Name == v.Name {
		return bindings, nil
	}
	if occursIn(v, other, bindings) {
		return bindings, &UnifyError{Kind: OccursCheck, A: v, B: other}
	}
	return bindings.Extend(v.Name, other), nil
}

// occursIn reports whether v transitively appears within term, following
// existing bindings so that a variable already bound to a cyclic-looking
// structure is still caught.
func occursIn(v Variable, term Term, bindings Bindings) bool {
	switch t := bindings.Walk(term).(type) {
	case Variable:
		return t.Name == v.Name
	case Compound:
		for _, arg := range t.Args {
			if occursIn(v, arg, bindings) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
