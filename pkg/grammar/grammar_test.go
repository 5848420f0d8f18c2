package grammar

import (
	"testing"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
)

func sub(surface string, tags ...model.POS) model.Word  { return model.NewWord(surface, "", tags...) }
func verb(surface string) model.Word                    { return sub(surface, model.POSVerb) }
func noun(surface string) model.Word                    { return sub(surface, model.POSNoun) }
func article(surface string) model.Word                 { return sub(surface, model.POSArticle) }
func adjective(surface string) model.Word               { return sub(surface, model.POSAdjective) }

func TestClauseOrderPermutations(t *testing.T) {
	s, v, o := noun("gato"), verb("come"), noun("pescado")

	cases := map[string]model.Sentence{
		"SVO": {s, v, o},
		"OVS": {o, v, s},
		"VSO": {v, s, o},
	}
	for name, sentence := range cases {
		score, _ := Score(sentence)
		if score != 1 {
			t.Errorf("%s: expected score 1.0, got %v", name, score)
		}
	}
}

func TestSVPermutations(t *testing.T) {
	s, v := noun("gato"), verb("duerme")
	for name, sentence := range map[string]model.Sentence{
		"SV": {s, v},
		"VS": {v, s},
	} {
		score, _ := Score(sentence)
		if score != 1 {
			t.Errorf("%s: expected score 1.0, got %v", name, score)
		}
	}
}

// TestAdjectiveAndArticlePlacement mirrors spec §8 seed scenarios 5 and 6:
// both word orders reduce to the same N-V-N skeleton and must score 1.0.
func TestAdjectiveAndArticlePlacement(t *testing.T) {
	me := sub("Me", model.POSPronoun)
	gusta := verb("gusta")
	la := article("la")
	casa := noun("casa")
	azul := adjective("azul")

	adjAfterNoun := model.Sentence{me, gusta, la, casa, azul}
	adjBeforeArticle := model.Sentence{me, gusta, azul, la, casa}

	for name, sentence := range map[string]model.Sentence{
		"adjective after noun":        adjAfterNoun,
		"adjective before la casa":    adjBeforeArticle,
	} {
		score, _ := Score(sentence)
		if score != 1 {
			t.Errorf("%s: expected score 1.0, got %v", name, score)
		}
	}
}

func TestInvalidOrderScoresLess(t *testing.T) {
	// Two verbs with no legal S/V/O skeleton reading.
	sentence := model.Sentence{verb("corre"), verb("salta")}
	score, _ := Score(sentence)
	if score >= 1 {
		t.Errorf("expected an invalid order to score below 1.0, got %v", score)
	}
}

func TestUnknownTokenNeitherHelpsNorHurts(t *testing.T) {
	s, v := noun("gato"), verb("come")
	unknown := model.NewWord("xyzzy", "")
	withUnknown, _ := Score(model.Sentence{s, v, unknown})
	without, _ := Score(model.Sentence{s, v})
	if withUnknown != without {
		t.Errorf("expected unknown token to leave score unchanged: %v vs %v", withUnknown, without)
	}
}

func TestEmptySentenceScoresOne(t *testing.T) {
	score, _ := Score(nil)
	if score != 1 {
		t.Errorf("expected empty sentence to score 1.0, got %v", score)
	}
}
