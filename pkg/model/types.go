// Package model holds the data types shared across the disambiguation
// engine's layers: POS tags, Words, Sentences, Candidates, Weights, and the
// Decision returned to callers. It corresponds to spec §3.
package model

import "fmt"

// POS is a part-of-speech tag drawn from the closed vocabulary in spec §3.
// The constants follow the lexicographic tie-break order used by the
// grammar validator: POSNoun is the zero value and the order-0 element,
// and POSUnknown is the last.
type POS int

const (
	POSNoun POS = iota
	POSVerb
	POSAdjective
	POSAdverb
	POSPronoun
	POSArticle
	POSPreposition
	POSConjunction
	POSInterjection
	POSUnknown
)

// posNames is ordered to match the closed vocabulary listed in spec §3;
// grammar.go's tie-break relies on this exact ordering.
var posNames = [...]string{
	POSNoun:         "noun",
	POSVerb:         "verb",
	POSAdjective:    "adjective",
	POSAdverb:       "adverb",
	POSPronoun:      "pronoun",
	POSArticle:      "article",
	POSPreposition:  "preposition",
	POSConjunction:  "conjunction",
	POSInterjection: "interjection",
	POSUnknown:      "unknown",
}

func (p POS) String() string {
	if int(p) < 0 || int(p) >= len(posNames) {
		return "unknown"
	}
	return posNames[p]
}

// AllPOS lists every tag in the closed vocabulary's canonical order.
func AllPOS() []POS {
	tags := make([]POS, len(posNames))
	for i := range posNames {
		tags[i] = POS(i)
	}
	return tags
}

// Word is the tuple (surface form, candidate POS tags, optional lemma). A
// surface form may carry multiple POS tags; the grammar validator accepts
// any assignment from Tags that yields a legal sentence order.
type Word struct {
	Surface string
	Tags    []POS
	Lemma   string
}

// NewWord builds a Word with one or more candidate POS tags.
func NewWord(surface string, lemma string, tags ...POS) Word {
	return Word{Surface: surface, Tags: tags, Lemma: lemma}
}

// Sentence is an ordered sequence of Words. The Disambiguator preserves
// this sequence verbatim except at the target position (spec §3).
type Sentence []Word

// Surfaces returns the surface forms of every word, in order.
func (s Sentence) Surfaces() []string {
	out := make([]string, len(s))
	for i, w := range s {
		out[i] = w.Surface
	}
	return out
}

// Weights are the (α, β, γ) blend coefficients for char/grammar/context
// sub-scores. They must sum to 1 within 1e-9 and each lie in [0,1].
type Weights struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// DefaultWeights returns the spec's default (0.30, 0.30, 0.40) blend.
func DefaultWeights() Weights {
	return Weights{Alpha: 0.30, Beta: 0.30, Gamma: 0.40}
}

const weightsEpsilon = 1e-9

// Validate enforces the simplex constraint from spec §3/§6: each weight in
// [0,1] and the three sum to 1 within 1e-9.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Alpha, w.Beta, w.Gamma} {
		if v < 0 || v > 1 {
			return ErrInvalidWeights
		}
	}
	sum := w.Alpha + w.Beta + w.Gamma
	if diff := sum - 1; diff < -weightsEpsilon || diff > weightsEpsilon {
		return ErrInvalidWeights
	}
	return nil
}

// RationaleEntry records one scorer's contribution to a candidate's final
// score, in dispatch order, per spec §7 ("rationales always enumerate the
// three sub-scores and the message-dispatch order, even for zero scores").
type RationaleEntry struct {
	Factor string
	Score  float64
	Note   string
}

// Breakdown is the char/grammar/context sub-score triple reported in a
// Decision.
type Breakdown struct {
	Char    float64
	Grammar float64
	Context float64
}

// Candidate is a scored replacement for the target token. It is generated
// by the Disambiguator, scored by the Message Dispatcher, and dropped
// after ranking (spec §3).
type Candidate struct {
	Replacement string
	Char        float64
	Grammar     float64
	Context     float64
	Blended     float64
	Rationale   []RationaleEntry
}

// Decision is the public result of a disambiguation call (spec §6).
type Decision struct {
	Original   string
	Corrected  string
	Confidence float64
	Breakdown  Breakdown
	Rationale  []RationaleEntry
}

func (d Decision) String() string {
	return fmt.Sprintf("Decision{%q -> %q, confidence=%.3f}", d.Original, d.Corrected, d.Confidence)
}
