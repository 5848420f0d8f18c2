package kernel

import "fmt"

// UnifyErrorKind classifies why a unification episode failed. Kernel
// failures are internal signals (per spec §7): scorers catch them and
// convert them into a zero sub-score plus a rationale note; they never
// escape to a caller of the public Disambiguator API.
type UnifyErrorKind int

const (
	// AtomMismatch: two atoms with different values.
	AtomMismatch UnifyErrorKind = iota
	// ArityMismatch: two compounds with the same functor, different arity.
	ArityMismatch
	// FunctorMismatch: two compounds with different functor names.
	FunctorMismatch
	// OccursCheck: a variable would bind to a term that transitively
	// mentions it.
	OccursCheck
	// StructuralMismatch: the terms are not unifiable for any other reason
	// (e.g. an atom against a compound).
	StructuralMismatch
)

func (k UnifyErrorKind) String() string {
	switch k {
	case AtomMismatch:
		return "AtomMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case FunctorMismatch:
		return "FunctorMismatch"
	case OccursCheck:
		return "OccursCheck"
	case StructuralMismatch:
		return "StructuralMismatch"
	default:
		return "UnknownUnifyError"
	}
}

// UnifyError reports why Unify failed, carrying the offending pair of terms
// for the rationale note.
type UnifyError struct {
	Kind UnifyErrorKind
	A, B Term
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("unify: %s between %s and %s", e.Kind, e.A.String(), e.B.String())
}
