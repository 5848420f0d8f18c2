// Package dispatch implements L4: the Message Dispatcher (TAO). Each
// candidate is wrapped as an object that receives typed queries
// (char?/grammar?/context?/explain?) and returns a score, isolating the
// orchestrator from the scorer internals (spec §4.3).
//
// The teacher's Matche/PatternClause (gitrdm-gokando/pkg/minikanren/pattern.go)
// matches a term against an open list of clauses built at the call site.
// This spec instead needs a *closed* message enumeration with exhaustiveness
// checking (spec §9's design note), so the dispatcher here is a switch over
// a typed Selector enum rather than a pattern list.
package dispatch

import (
	"fmt"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
)

// Selector is the closed set of messages a candidate object can receive.
type Selector int

const (
	CharQuery Selector = iota
	GrammarQuery
	ContextQuery
	ExplainQuery
)

func (s Selector) String() string {
	switch s {
	case CharQuery:
		return "char?"
	case GrammarQuery:
		return "grammar?"
	case ContextQuery:
		return "context?"
	case ExplainQuery:
		return "explain?"
	default:
		return "unknown?"
	}
}

// ErrUnknownSelector is an internal invariant breach (spec §7): a selector
// outside the closed set was dispatched. It is a programming fault, never
// a user-visible error.
type ErrUnknownSelector struct{ Selector Selector }

func (e *ErrUnknownSelector) Error() string {
	return fmt.Sprintf("dispatch: unknown selector %v", int(e.Selector))
}

// CharQueryArgs carries the target token for a char? message.
type CharQueryArgs struct{ Target string }

// GrammarQueryArgs carries the sentence and target position for a
// grammar? message.
type GrammarQueryArgs struct {
	Sentence model.Sentence
	Position int
}

// ContextQueryArgs carries the sentence and target position for a
// context? message.
type ContextQueryArgs struct {
	Sentence model.Sentence
	Position int
}

// Reply is the typed response to a dispatched message: Score is set for
// char?/grammar?/context?; Rationale is set for explain?.
type Reply struct {
	Score     float64
	Rationale []model.RationaleEntry
}

// Receiver is a candidate-as-object: it answers every message in the
// closed set and nothing else. Implementations must be total (spec §4.3:
// "every candidate handles every message").
type Receiver interface {
	Handle(selector Selector, args any) (Reply, error)
}

// CandidateObject is the Receiver used by the Disambiguator. It wraps the
// pure scorer functions (char, grammar, context) and accumulates a
// rationale as each message is answered, so explain? can report the full
// dispatch history even for zero scores (spec §7).
type CandidateObject struct {
	Token string

	CharFn    func(target string) float64
	GrammarFn func(sentence model.Sentence, position int) (float64, error)
	ContextFn func(sentence model.Sentence, position int) (float64, error)

	rationale []model.RationaleEntry
}

// NewCandidateObject wraps a replacement token and the three scorer
// functions it should query on demand.
func NewCandidateObject(
	token string,
	charFn func(string) float64,
	grammarFn func(model.Sentence, int) (float64, error),
	contextFn func(model.Sentence, int) (float64, error),
) *CandidateObject {
	return &CandidateObject{Token: token, CharFn: charFn, GrammarFn: grammarFn, ContextFn: contextFn}
}

// Handle dispatches a single typed message. Unknown selectors return
// ErrUnknownSelector rather than panicking, so a caller can treat it as
// the programming fault it is without crashing the process.
func (c *CandidateObject) Handle(selector Selector, args any) (Reply, error) {
	switch selector {
	case CharQuery:
		a, ok := args.(CharQueryArgs)
		if !ok {
			return Reply{}, &ErrUnknownSelector{Selector: selector}
		}
		score := c.CharFn(a.Target)
		c.record("char", score, "")
		return Reply{Score: score}, nil

	case GrammarQuery:
		a, ok := args.(GrammarQueryArgs)
		if !ok {
			return Reply{}, &ErrUnknownSelector{Selector: selector}
		}
		score, err := c.GrammarFn(a.Sentence, a.Position)
		note := ""
		if err != nil {
			score = 0
			note = err.Error()
		}
		c.record("grammar", score, note)
		return Reply{Score: score}, nil

	case ContextQuery:
		a, ok := args.(ContextQueryArgs)
		if !ok {
			return Reply{}, &ErrUnknownSelector{Selector: selector}
		}
		score, err := c.ContextFn(a.Sentence, a.Position)
		note := ""
		if err != nil {
			score = 0
			note = err.Error()
		}
		c.record("context", score, note)
		return Reply{Score: score}, nil

	case ExplainQuery:
		return Reply{Rationale: append([]model.RationaleEntry(nil), c.rationale...)}, nil

	default:
		return Reply{}, &ErrUnknownSelector{Selector: selector}
	}
}

func (c *CandidateObject) record(factor string, score float64, note string) {
	c.rationale = append(c.rationale, model.RationaleEntry{Factor: factor, Score: score, Note: note})
}
