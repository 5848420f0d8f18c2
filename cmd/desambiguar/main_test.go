package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func writeTempAsset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestRunDisambiguateEndToEnd(t *testing.T) {
	logger = zap.NewNop()

	lexiconPath = writeTempAsset(t, "lexicon.tsv", "roma\tnoun\troma\namor\tnoun\tamor\nel\tarticle\tel\n")
	semanticDBPath = writeTempAsset(t, "semantic.tsv", "roma\tplace,city\namor\tfeeling\n")
	sentenceFlag = "el smor"
	targetFlag = "smor"
	defer func() {
		lexiconPath, semanticDBPath, sentenceFlag, targetFlag = "", "", "", ""
	}()

	if err := runDisambiguate(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runDisambiguate failed: %v", err)
	}
}

func TestRunDisambiguateMissingTarget(t *testing.T) {
	logger = zap.NewNop()

	lexiconPath = writeTempAsset(t, "lexicon.tsv", "roma\tnoun\troma\n")
	semanticDBPath = writeTempAsset(t, "semantic.tsv", "roma\tplace\n")
	sentenceFlag = "el smor"
	targetFlag = "nope"
	defer func() {
		lexiconPath, semanticDBPath, sentenceFlag, targetFlag = "", "", "", ""
	}()

	if err := runDisambiguate(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected an error when --target is not found in --sentence")
	}
}
