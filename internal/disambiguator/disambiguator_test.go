package disambiguator

import (
	"reflect"
	"testing"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/lexicon"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/semanticdb"
)

func fixtureLexicon() *lexicon.Lexicon {
	return lexicon.New([]lexicon.Entry{
		{Surface: "roma", Tags: []model.POS{model.POSNoun}, Lemma: "roma"},
		{Surface: "amor", Tags: []model.POS{model.POSNoun}, Lemma: "amor"},
		{Surface: "casa", Tags: []model.POS{model.POSNoun}, Lemma: "casa"},
		{Surface: "coliseo", Tags: []model.POS{model.POSNoun}, Lemma: "coliseo"},
		{Surface: "romano", Tags: []model.POS{model.POSAdjective}, Lemma: "romano"},
		{Surface: "visite", Tags: []model.POS{model.POSVerb}, Lemma: "visitar"},
		{Surface: "gusta", Tags: []model.POS{model.POSVerb}, Lemma: "gustar"},
		{Surface: "la", Tags: []model.POS{model.POSArticle}, Lemma: "la"},
		{Surface: "azul", Tags: []model.POS{model.POSAdjective}, Lemma: "azul"},
		{Surface: "me", Tags: []model.POS{model.POSPronoun}, Lemma: "me"},
	})
}

func fixtureSemanticDB() *semanticdb.DB {
	return semanticdb.New(map[string][]string{
		"roma":     {"place", "city"},
		"amor":     {"feeling"},
		"coliseo":  {"place", "monument"},
		"romano":   {"place", "history"},
		"visite":   {"travel"},
		"casa":     {"place", "home"},
	})
}

func word(surface string, tags ...model.POS) model.Word {
	return model.NewWord(surface, surface, tags...)
}

// TestDisambiguatePicksCloserSpellingWhenOthersTie uses a minimal fixture
// where the context word carries no semantic-DB entry, so both candidates
// land on the neutral 0.5 context score, and both are tagged as nouns, so
// both produce the same single-element "N" skeleton (which matches none of
// the S/V/O clause orders, since they all require a verb or a second noun) and
// tie at grammar=0. Only the char sub-score differs, so it alone decides
// the winner — a fully hand-checkable case.
func TestDisambiguatePicksCloserSpellingWhenOthersTie(t *testing.T) {
	lx := lexicon.New([]lexicon.Entry{
		{Surface: "roma", Tags: []model.POS{model.POSNoun}, Lemma: "roma"},
		{Surface: "amor", Tags: []model.POS{model.POSNoun}, Lemma: "amor"},
	})
	db := semanticdb.New(map[string][]string{
		"roma": {"place"},
		"amor": {"feeling"},
	})
	d := New(lx, db, DefaultConfig())

	sentence := model.Sentence{word("el"), word("smor")}
	decision, err := d.Disambiguate(sentence, 1, model.DefaultWeights())
	if err != nil {
		t.Fatalf("Disambiguate returned error: %v", err)
	}
	if decision.Corrected != "el amor" {
		t.Fatalf("Corrected = %q, want %q", decision.Corrected, "el amor")
	}
	if decision.Breakdown.Grammar != 0 {
		t.Fatalf("Breakdown.Grammar = %v, want 0 (single noun skeleton matches no clause order)", decision.Breakdown.Grammar)
	}
	if decision.Breakdown.Context != 0.5 {
		t.Fatalf("Breakdown.Context = %v, want neutral 0.5 (context word has no semantic-DB entry)", decision.Breakdown.Context)
	}
	wantConfidence := 0.3*0.75 + 0.3*0 + 0.4*0.5
	if diff := decision.Confidence - wantConfidence; diff < -1e-9 || diff > 1e-9 {
		t.Fatalf("Confidence = %v, want %v", decision.Confidence, wantConfidence)
	}
}

func TestDisambiguateWeightFlipPrefersAmor(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())
	sentence := model.Sentence{
		word("siento"),
		word("mucho"),
		word("smor"),
	}

	// Heavily weight char: no context word has a semantic-DB entry, so every
	// candidate gets the neutral 0.5 context score, and every candidate
	// yields a lone-N skeleton (grammar 0). "amor" (one edit from "smor",
	// char 0.75) then out-ranks "roma" and "me" (three edits, char 0.25).
	weights := model.Weights{Alpha: 0.9, Beta: 0.05, Gamma: 0.05}
	decision, err := d.Disambiguate(sentence, 2, weights)
	if err != nil {
		t.Fatalf("Disambiguate returned error: %v", err)
	}
	if decision.Corrected != "siento mucho amor" {
		t.Fatalf("Corrected = %q, want %q", decision.Corrected, "siento mucho amor")
	}
}

func TestDisambiguateInvalidWeights(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())
	sentence := model.Sentence{word("smor")}

	_, err := d.Disambiguate(sentence, 0, model.Weights{Alpha: 0.5, Beta: 0.5, Gamma: 0.5})
	if err != model.ErrInvalidWeights {
		t.Fatalf("expected ErrInvalidWeights, got %v", err)
	}
}

func TestDisambiguateTargetOutOfRange(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())
	sentence := model.Sentence{word("casa")}

	_, err := d.Disambiguate(sentence, 5, model.DefaultWeights())
	if err != model.ErrTargetOutOfRange {
		t.Fatalf("expected ErrTargetOutOfRange, got %v", err)
	}
}

func TestDisambiguateNoCandidates(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())
	sentence := model.Sentence{word("zzzzzzzzzzzzzzzzzzzz")}

	_, err := d.Disambiguate(sentence, 0, model.DefaultWeights())
	if err != model.ErrNoCandidates {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestDisambiguateIsDeterministic(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())
	sentence := model.Sentence{
		word("visite", model.POSVerb),
		word("el"),
		word("coliseo", model.POSNoun),
		word("smor"),
	}

	first, err := d.Disambiguate(sentence, 3, model.DefaultWeights())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := d.Disambiguate(sentence, 3, model.DefaultWeights())
		if err != nil {
			t.Fatalf("repeat call: %v", err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("non-deterministic result: %+v vs %+v", again, first)
		}
	}
}

func TestDisambiguateGrammarScenarioAdjectiveBeforeOrAfterNoun(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())

	adjAfter := model.Sentence{
		word("me", model.POSPronoun),
		word("gusta", model.POSVerb),
		word("la", model.POSArticle),
		word("casa", model.POSNoun),
		word("azul", model.POSAdjective),
	}
	decision, err := d.Disambiguate(adjAfter, 3, model.DefaultWeights())
	if err != nil {
		t.Fatalf("adjAfter: %v", err)
	}
	if decision.Corrected == "" {
		t.Fatalf("expected a corrected sentence")
	}

	adjBefore := model.Sentence{
		word("me", model.POSPronoun),
		word("gusta", model.POSVerb),
		word("azul", model.POSAdjective),
		word("la", model.POSArticle),
		word("casa", model.POSNoun),
	}
	if _, err := d.Disambiguate(adjBefore, 3, model.DefaultWeights()); err != nil {
		t.Fatalf("adjBefore: %v", err)
	}
}

func TestDisambiguateRejectsSelfReplacement(t *testing.T) {
	d := New(fixtureLexicon(), fixtureSemanticDB(), DefaultConfig())
	sentence := model.Sentence{word("roma", model.POSNoun)}

	decision, err := d.Disambiguate(sentence, 0, model.DefaultWeights())
	if err != nil {
		t.Fatalf("Disambiguate returned error: %v", err)
	}
	if decision.Corrected == "roma" {
		t.Fatalf("winning replacement should never equal the original target verbatim, got %q", decision.Corrected)
	}
}
