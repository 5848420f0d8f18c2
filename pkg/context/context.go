// Package context implements the Shared-Context Layer (APPLOG): logic
// variables whose values must stay consistent across the three base
// scorers within one disambiguation call, plus constraint predicates that
// reject inconsistent candidates.
//
// The layer is single-threaded and non-blocking, matching spec §4.2 and
// §5. It is modeled on the teacher's local/global ConstraintStore split
// (gitrdm-gokando/pkg/minikanren/constraint_store.go), trimmed to the
// single, synchronous store this spec needs: there is exactly one
// SharedContext per disambiguation call, so the "global constraint bus"
// half of the teacher's architecture has no work to do here.
package context

import (
	"fmt"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/kernel"
)

// Constraint is a predicate evaluated against the context's resolved
// bindings after every Bind. It mirrors the teacher's Constraint interface
// (ID, Check) stripped of the locality/cloning machinery that only matters
// for the teacher's parallel constraint-solving product.
type Constraint interface {
	// ID identifies the constraint for diagnostics.
	ID() string
	// Check evaluates the constraint against the given resolver. A
	// non-nil error is a Violation carrying the reason.
	Check(resolve func(kernel.Term) kernel.Term) error
}

// Violation reports that a bound candidate broke a registered constraint.
// Per spec §7 this is an internal signal: the Disambiguator catches it and
// rejects the candidate, it is never surfaced to a caller.
type Violation struct {
	ConstraintID string
	Reason       string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("constraint %s violated: %s", v.ConstraintID, v.Reason)
}

// Context is a named set of bindings scoped to one disambiguation call.
// It is created when the Disambiguator receives a sentence, mutated only
// through Fresh, AddConstraint, Bind and Subcontext.Close, and discarded
// when the call returns.
type Context struct {
	bindings    kernel.Bindings
	constraints []Constraint
	varSeq      int
}

// New creates an empty SharedContext for a single disambiguation call.
func New() *Context {
	return &Context{bindings: kernel.NewBindings()}
}

// Fresh introduces a new variable unique within this context. name is a
// human-readable prefix; uniqueness is guaranteed by an internal counter,
// so two calls to Fresh("pos") never collide even with the same prefix.
func (c *Context) Fresh(name string) kernel.Variable {
	c.varSeq++
	return kernel.NewVariable(fmt.Sprintf("%s#%d", name, c.varSeq))
}

// AddConstraint registers a predicate that runs after every subsequent
// Bind call in this context (and in any subcontext derived from it).
func (c *Context) AddConstraint(constraint Constraint) {
	c.constraints = append(c.constraints, constraint)
}

// Bind attempts to unify v's current resolution with term, then runs every
// registered constraint. If unification fails or a constraint is violated,
// the context is left unchanged and the error is returned.
func (c *Context) Bind(v kernel.Variable, term kernel.Term) error {
	next, err := kernel.Unify(v, term, c.bindings)
	if err != nil {
		return err
	}

	resolve := func(t kernel.Term) kernel.Term { return next.Resolve(t) }
	for _, constraint := range c.constraints {
		if cerr := constraint.Check(resolve); cerr != nil {
			return &Violation{ConstraintID: constraint.ID(), Reason: cerr.Error()}
		}
	}

	c.bindings = next
	return nil
}

// Resolve returns the fully-resolved term bound to v (or v itself, if
// unbound), chasing every binding chain.
func (c *Context) Resolve(term kernel.Term) kernel.Term {
	return c.bindings.Resolve(term)
}

// checkpoint captures enough state to roll a context back to this point.
type checkpoint struct {
	bindingLen  int
	constraintN int
}

// snapshot records the current binding-table length and constraint count,
// per spec §9's design note: "record the table's length on entry, truncate
// on exit".
func (c *Context) snapshot() checkpoint {
	return checkpoint{bindingLen: c.bindings.Len(), constraintN: len(c.constraints)}
}

// Subcontext is a scoped acquisition of a Context: bindings and
// constraints introduced inside are discarded when Close is called,
// regardless of whether the caller's work succeeded or failed.
type Subcontext struct {
	*Context
	parent *Context
	mark   checkpoint
}

// WithCandidate opens a scoped subcontext. Callers must invoke Close
// exactly once, typically via defer, which discards any bindings or
// constraints introduced since the subcontext was opened.
func (c *Context) WithCandidate() *Subcontext {
	return &Subcontext{Context: c, parent: c, mark: c.snapshot()}
}

// Close rolls the parent context back to the state it was in when this
// subcontext was opened. Safe to call multiple times.
func (s *Subcontext) Close() {
	if s.parent.bindings.Len() <= s.mark.bindingLen && len(s.parent.constraints) <= s.mark.constraintN {
		return
	}
	// The binding table is append-only and copy-on-write, so truncating
	// "by length" means rebuilding from the order slice up to mark - the
	// teacher's note applies directly here since kernel.Bindings already
	// tracks insertion order.
	s.parent.bindings = s.parent.bindings.Truncate(s.mark.bindingLen)
	s.parent.constraints = s.parent.constraints[:s.mark.constraintN]
}
