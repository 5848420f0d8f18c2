// Package grammar implements L1b: POS tagging and permissive word-order
// validation (spec §4.5). Like charmatch, it is a pure base scorer with no
// shared state between calls.
//
// The validator searches the (small, closed) space of POS-tag assignments
// for a sentence and returns the best score over that space, rather than
// building a full parse tree — spec §1 is explicit that the engine "does
// not guarantee grammatically complete parses of arbitrary Spanish prose".
// This mirrors the teacher's DCG module's idea of walking a sentence as a
// sequence of terminals (gitrdm-gokando/pkg/minikanren/dcg.go) without
// adopting its SLG tabling machinery, which solves a different (grammar
// definition and left-recursive parsing) problem than this spec's bounded
// order check.
package grammar

import (
	"sort"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
)

// clauseOrders are the accepted Subject/Verb/Object permutations from
// spec §4.5, already reduced to the N/V skeleton alphabet: subjects and
// objects are both role "N" (spec §4.5 tags nouns/pronouns identically
// regardless of grammatical function), so SVO and OVS reduce to the same
// "N V N" skeleton and share one entry.
var clauseOrders = [][]string{
	{"N", "V", "N"}, // SVO, OVS
	{"V", "N", "N"}, // VSO
	{"N", "V"},      // SV
	{"V", "N"},      // VS
}

// role maps a POS tag to the clause role it can occupy. Subjects and
// objects are filled by nouns or pronouns; verbs by verbs. Articles,
// adjectives, adverbs, prepositions, conjunctions, and interjections never
// occupy an S/V/O slot — they are accepted anywhere relative to the noun
// they modify (spec §4.5: "adjectives may precede or follow their noun;
// articles precede their noun").
func role(p model.POS) (string, bool) {
	switch p {
	case model.POSNoun, model.POSPronoun:
		return "N", true
	case model.POSVerb:
		return "V", true
	default:
		return "", false
	}
}

// Score assigns POS tags to sentence and validates its word order,
// returning the best score = matched-constraints / total-constraints over
// the assignment maximizing it, and the winning tag assignment (for
// callers, e.g. the context scorer, that want to know which sense of an
// ambiguous word was chosen).
//
// Unknown tokens (words with no candidate tags) contribute neither penalty
// nor credit beyond being unmatchable, per spec §4.5.
func Score(sentence model.Sentence) (float64, []model.POS) {
	if len(sentence) == 0 {
		return 1, nil
	}

	assignments := enumerateAssignments(sentence)
	bestScore := -1.0
	var best []model.POS

	for _, assign := range assignments {
		score := scoreAssignment(assign)
		if score > bestScore || (score == bestScore && lexLess(assign, best)) {
			bestScore = score
			best = assign
		}
	}

	return bestScore, best
}

// enumerateAssignments returns the cartesian product of each word's
// candidate tags (or {POSUnknown} if a word carries no tags), sorted so
// ties resolve to the lexicographically smallest tag sequence (spec §4.5).
func enumerateAssignments(sentence model.Sentence) [][]model.POS {
	options := make([][]model.POS, len(sentence))
	for i, w := range sentence {
		if len(w.Tags) == 0 {
			options[i] = []model.POS{model.POSUnknown}
			continue
		}
		tags := append([]model.POS(nil), w.Tags...)
		sort.Slice(tags, func(a, b int) bool { return tags[a] < tags[b] })
		options[i] = tags
	}

	var out [][]model.POS
	var build func(i int, acc []model.POS)
	build = func(i int, acc []model.POS) {
		if i == len(options) {
			cp := append([]model.POS(nil), acc...)
			out = append(out, cp)
			return
		}
		for _, tag := range options[i] {
			build(i+1, append(acc, tag))
		}
	}
	build(0, nil)
	return out
}

// scoreAssignment computes matched-constraints / total-constraints for one
// tag assignment. The only scored constraint is clause order: does the
// S/V/O skeleton (nouns/pronouns as N, verbs as V, everything else
// dropped) match one of the accepted orderings. Articles and adjectives
// never occupy an S/V/O slot, so their placement relative to a noun is
// permissive by construction (spec §4.5) rather than a separate scored
// constraint — "Me gusta la casa azul" and "Me gusta azul la casa" both
// reduce to the same N-V-N skeleton and score 1.0.
func scoreAssignment(assign []model.POS) float64 {
	if matchesClauseOrder(assign) {
		return 1
	}
	return 0
}

// matchesClauseOrder extracts the S/V/O skeleton (nouns/pronouns as N,
// verbs as V, everything else dropped) and checks it against the
// accepted orderings, with N positions individually satisfying either an
// S or O role.
func matchesClauseOrder(assign []model.POS) bool {
	var skeleton []string
	for _, tag := range assign {
		if r, ok := role(tag); ok {
			skeleton = append(skeleton, r)
		}
	}
	if len(skeleton) == 0 {
		return true // no S/V/O content words: nothing to violate
	}

	for _, order := range clauseOrders {
		if skeletonMatches(skeleton, order) {
			return true
		}
	}
	return false
}

// skeletonMatches checks whether skeleton (a sequence of "N"/"V" roles)
// matches a clauseOrders pattern exactly, position for position.
func skeletonMatches(skeleton []string, pattern []string) bool {
	if len(skeleton) != len(pattern) {
		return false
	}
	for i := range skeleton {
		if skeleton[i] != pattern[i] {
			return false
		}
	}
	return true
}

// lexLess reports whether a precedes b in the closed POS vocabulary's
// lexicographic order (spec §4.5 tie-break). A nil b (no candidate yet)
// always loses.
func lexLess(a, b []model.POS) bool {
	if b == nil {
		return true
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
