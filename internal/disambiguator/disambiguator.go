// Package disambiguator implements T: the orchestrator that generates
// candidate replacements for a target token, scores each one through the
// Message Dispatcher against Shared-Context bindings, and blends the
// three sub-scores into a ranked Decision (spec §4.7).
//
// It corresponds to the teacher's highlevel_api.go/solver.go: a public
// entry function that wires together fresh variables, a constraint
// store, and a set of goals, then collects and ranks results — generalized
// here from "collect N logic solutions" to "score and rank candidate
// replacements".
package disambiguator

import (
	"fmt"
	"sort"
	"strings"

	appctx "github.com/Yatrogenesis/NL-SRE-Semantico/pkg/context"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/charmatch"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/dispatch"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/grammar"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/kernel"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/lexicon"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/semanticdb"
)

// Config holds the candidate-generation parameters left open by spec §9:
// the edit-distance threshold k and the candidate-set size cap.
type Config struct {
	EditDistanceCap int
	CandidateCap    int
}

// DefaultConfig returns the spec's documented defaults: k=3, cap=64.
func DefaultConfig() Config {
	return Config{EditDistanceCap: 3, CandidateCap: 64}
}

// Disambiguator is the T component: it owns references to the two
// read-only static assets (Lexicon, SemanticDB) and a Config, and exposes
// the single Disambiguate entry point.
type Disambiguator struct {
	Lexicon    *lexicon.Lexicon
	SemanticDB *semanticdb.DB
	Config     Config
}

// New builds a Disambiguator over the given read-only assets.
func New(lx *lexicon.Lexicon, db *semanticdb.DB, cfg Config) *Disambiguator {
	return &Disambiguator{Lexicon: lx, SemanticDB: db, Config: cfg}
}

// noDuplicateNeighbor rejects a candidate whose bound surface form already
// occupies another position in the sentence: the corrected sentence should
// never read, e.g., "visite el coliseo coliseo". It is the one constraint
// the orchestrator registers on each candidate's scoped subcontext, so
// Shared-Context rejection (spec §9) has a real, reachable trigger.
type noDuplicateNeighbor struct {
	targetVar kernel.Variable
	neighbors map[string]struct{}
}

func (noDuplicateNeighbor) ID() string { return "no-duplicate-neighbor" }

func (c noDuplicateNeighbor) Check(resolve func(kernel.Term) kernel.Term) error {
	resolved := resolve(c.targetVar)
	compound, ok := resolved.(kernel.Compound)
	if !ok || len(compound.Args) == 0 {
		return nil
	}
	surface, ok := compound.Args[0].(kernel.Atom)
	if !ok {
		return nil
	}
	if _, dup := c.neighbors[surface.Value]; dup {
		return fmt.Errorf("%q already occupies another position in the sentence", surface.Value)
	}
	return nil
}

// Disambiguate is the library entry point (spec §6):
// disambiguate(sentence, target_index, weights) -> Decision.
func (d *Disambiguator) Disambiguate(sentence model.Sentence, targetIndex int, weights model.Weights) (model.Decision, error) {
	if err := weights.Validate(); err != nil {
		return model.Decision{}, err
	}
	if targetIndex < 0 || targetIndex >= len(sentence) {
		return model.Decision{}, model.ErrTargetOutOfRange
	}

	target := sentence[targetIndex]
	tokens := d.generateCandidateTokens(sentence, targetIndex)
	if len(tokens) == 0 {
		return model.Decision{}, model.ErrNoCandidates
	}

	scored := make([]model.Candidate, 0, len(tokens))
	for _, token := range tokens {
		cand, ok := d.score(sentence, targetIndex, target, token, weights)
		if ok {
			scored = append(scored, cand)
		}
	}
	if len(scored) == 0 {
		return model.Decision{}, model.ErrNoCandidates
	}

	rank(scored)
	winner := scored[0]

	return model.Decision{
		Original:   strings.Join(sentence.Surfaces(), " "),
		Corrected:  correctedSentence(sentence, targetIndex, winner.Replacement),
		Confidence: winner.Blended,
		Breakdown:  model.Breakdown{Char: winner.Char, Grammar: winner.Grammar, Context: winner.Context},
		Rationale:  winner.Rationale,
	}, nil
}

// generateCandidateTokens unions (a) lexicon entries within edit-distance
// EditDistanceCap of the target, and (b) entries whose semantic tags
// intersect the sentence's tag bag (spec §4.7 step 1), capped at
// CandidateCap and returned in a deterministic (sorted) order so that
// candidate-set-order-dependent behavior (spec §5: "candidates are
// processed in input-order... before the final ranking sort") is stable
// across calls.
func (d *Disambiguator) generateCandidateTokens(sentence model.Sentence, targetIndex int) []string {
	seen := map[string]struct{}{}
	var tokens []string

	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}

	for _, e := range d.Lexicon.Within(sentence[targetIndex].Surface, d.Config.EditDistanceCap) {
		add(e.Surface)
	}

	ctxTags := d.sentenceTagBag(sentence, targetIndex)
	if len(ctxTags) > 0 {
		for _, t := range d.SemanticDB.TokensWithAnyTag(ctxTags) {
			add(t)
		}
	}

	sort.Strings(tokens)
	if len(tokens) > d.Config.CandidateCap {
		tokens = tokens[:d.Config.CandidateCap]
	}
	return tokens
}

// sentenceTagBag unions the semantic tags of every content word in the
// sentence other than the target itself.
func (d *Disambiguator) sentenceTagBag(sentence model.Sentence, targetIndex int) []string {
	seen := map[string]struct{}{}
	var tags []string
	for i, w := range sentence {
		if i == targetIndex {
			continue
		}
		for _, t := range d.SemanticDB.Tags(w.Surface) {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// score opens a scoped subcontext for one candidate, binds it into the
// Shared-Context Layer through the Unification Kernel, and — if accepted —
// dispatches the three query messages in the fixed char?/grammar?/context?
// order, returning the resulting Candidate and whether it survived (false
// means it was rejected by a ConstraintViolation and must not appear in
// the ranked rationale, per spec invariant 3).
func (d *Disambiguator) score(
	sentence model.Sentence,
	targetIndex int,
	target model.Word,
	token string,
	weights model.Weights,
) (model.Candidate, bool) {
	if token == target.Surface {
		return model.Candidate{}, false
	}

	ctx := appctx.New()
	sub := ctx.WithCandidate()
	defer sub.Close()

	pos := d.candidatePOS(token)
	v := ctx.Fresh("target")
	ctx.AddConstraint(noDuplicateNeighbor{targetVar: v, neighbors: neighborSurfaces(sentence, targetIndex)})
	if err := ctx.Bind(v, kernel.Word(token, pos.String(), d.candidateLemma(token))); err != nil {
		return model.Candidate{}, false
	}

	obj := dispatch.NewCandidateObject(
		token,
		func(t string) float64 { return charmatch.Score(t, token) },
		func(s model.Sentence, position int) (float64, error) {
			score, _ := grammar.Score(substitute(s, position, token, pos))
			return score, nil
		},
		func(s model.Sentence, position int) (float64, error) {
			others := otherSurfaces(s, position)
			return d.SemanticDB.ContextScore(token, others), nil
		},
	)

	charReply, _ := obj.Handle(dispatch.CharQuery, dispatch.CharQueryArgs{Target: target.Surface})
	grammarReply, _ := obj.Handle(dispatch.GrammarQuery, dispatch.GrammarQueryArgs{Sentence: sentence, Position: targetIndex})
	contextReply, _ := obj.Handle(dispatch.ContextQuery, dispatch.ContextQueryArgs{Sentence: sentence, Position: targetIndex})
	explainReply, _ := obj.Handle(dispatch.ExplainQuery, nil)

	blended := weights.Alpha*charReply.Score + weights.Beta*grammarReply.Score + weights.Gamma*contextReply.Score

	return model.Candidate{
		Replacement: token,
		Char:        charReply.Score,
		Grammar:     grammarReply.Score,
		Context:     contextReply.Score,
		Blended:     blended,
		Rationale:   explainReply.Rationale,
	}, true
}

// candidatePOS returns the lexicon's first (lexicographically smallest)
// candidate tag for token, or POSUnknown if the token has no lexicon
// entry (e.g. it was only reachable via the semantic tag bag).
func (d *Disambiguator) candidatePOS(token string) model.POS {
	e, ok := d.Lexicon.Lookup(token)
	if !ok || len(e.Tags) == 0 {
		return model.POSUnknown
	}
	best := e.Tags[0]
	for _, t := range e.Tags[1:] {
		if t < best {
			best = t
		}
	}
	return best
}

func (d *Disambiguator) candidateLemma(token string) string {
	if e, ok := d.Lexicon.Lookup(token); ok {
		return e.Lemma
	}
	return token
}

// substitute returns a copy of sentence with the word at position replaced
// by a word carrying the candidate's surface and POS tag, leaving every
// other position untouched (spec §3: "the sequence the caller supplies is
// preserved verbatim except at the target position").
func substitute(sentence model.Sentence, position int, token string, pos model.POS) model.Sentence {
	out := make(model.Sentence, len(sentence))
	copy(out, sentence)
	tags := []model.POS{pos}
	if pos == model.POSUnknown {
		tags = nil
	}
	out[position] = model.NewWord(token, token, tags...)
	return out
}

// neighborSurfaces returns the set of surface forms occupying every
// position in sentence other than position.
func neighborSurfaces(sentence model.Sentence, position int) map[string]struct{} {
	out := make(map[string]struct{}, len(sentence))
	for i, w := range sentence {
		if i != position {
			out[w.Surface] = struct{}{}
		}
	}
	return out
}

func otherSurfaces(sentence model.Sentence, position int) []string {
	out := make([]string, 0, len(sentence))
	for i, w := range sentence {
		if i != position {
			out = append(out, w.Surface)
		}
	}
	return out
}

func correctedSentence(sentence model.Sentence, position int, replacement string) string {
	surfaces := append([]string(nil), sentence.Surfaces()...)
	surfaces[position] = replacement
	return strings.Join(surfaces, " ")
}

// rank sorts candidates by blended score descending, breaking ties by
// higher context score, then higher grammar score, then higher char score,
// then lexicographic order of the surface form (spec §4.7 step 4).
func rank(candidates []model.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Blended != b.Blended {
			return a.Blended > b.Blended
		}
		if a.Context != b.Context {
			return a.Context > b.Context
		}
		if a.Grammar != b.Grammar {
			return a.Grammar > b.Grammar
		}
		if a.Char != b.Char {
			return a.Char > b.Char
		}
		return a.Replacement < b.Replacement
	})
}
