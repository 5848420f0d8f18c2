package semanticdb

import "testing"

func sample() *DB {
	return New(map[string][]string{
		"roma":    {"geography", "city", "architecture"},
		"amor":    {"romantic", "emotion"},
		"coliseo": {"architecture", "geography", "landmark"},
		"romano":  {"architecture", "history"},
	})
}

func TestContextScoreJaccard(t *testing.T) {
	db := sample()
	// roma {geography, city, architecture} shares {geography, architecture}
	// with {coliseo, romano}'s union {architecture, geography, landmark,
	// history} -> |inter|=2, |union|=3+4-2=5.
	got := db.ContextScore("roma", []string{"coliseo", "romano"})
	want := 2.0 / 5.0
	if got != want {
		t.Errorf("ContextScore(roma, ...) = %v, want %v", got, want)
	}
}

func TestContextScoreNeutralWhenEmpty(t *testing.T) {
	db := sample()
	if got := db.ContextScore("roma", nil); got != 0.5 {
		t.Errorf("expected neutral 0.5 with empty context, got %v", got)
	}
	if got := db.ContextScore("unknown-token", []string{"coliseo"}); got != 0.5 {
		t.Errorf("expected neutral 0.5 for unknown candidate, got %v", got)
	}
}

func TestTokensWithAnyTag(t *testing.T) {
	db := sample()
	got := db.TokensWithAnyTag([]string{"romantic"})
	if len(got) != 1 || got[0] != "amor" {
		t.Errorf("expected [amor], got %v", got)
	}
}

func TestHasAndTags(t *testing.T) {
	db := sample()
	if !db.Has("roma") {
		t.Error("expected roma to be present")
	}
	if db.Has("inexistente") {
		t.Error("expected inexistente to be absent")
	}
	tags := db.Tags("amor")
	if len(tags) != 2 {
		t.Errorf("expected 2 tags for amor, got %v", tags)
	}
}
