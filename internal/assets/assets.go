// Package assets loads the lexicon and semantic-DB flat-file formats (spec
// §6) into the queryable in-memory structures pkg/lexicon and pkg/semanticdb
// expose. It is I/O-adjacent housekeeping, not scoring logic, so it lives
// outside the pure core and is free to log and return wrapped errors.
package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/lexicon"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/semanticdb"
)

var posByName = map[string]model.POS{
	"noun":         model.POSNoun,
	"verb":         model.POSVerb,
	"adjective":    model.POSAdjective,
	"adverb":       model.POSAdverb,
	"pronoun":      model.POSPronoun,
	"article":      model.POSArticle,
	"preposition":  model.POSPreposition,
	"conjunction":  model.POSConjunction,
	"interjection": model.POSInterjection,
}

// LoadLexicon parses the `surface\tPOS1[,POS2,...]\tlemma` format from r,
// skipping blank lines and logging (rather than failing on) malformed ones
// so one bad line in a large asset file doesn't sink the whole load.
func LoadLexicon(r io.Reader, log *zap.Logger) (*lexicon.Lexicon, error) {
	log = orNop(log)
	scanner := bufio.NewScanner(r)

	var entries []lexicon.Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			log.Warn("lexicon: malformed line, skipping",
				zap.Int("line", lineNo), zap.String("content", line))
			continue
		}

		tags, ok := parsePOSList(fields[1])
		if !ok {
			log.Warn("lexicon: unrecognized POS tag, skipping",
				zap.Int("line", lineNo), zap.String("content", line))
			continue
		}

		entries = append(entries, lexicon.Entry{
			Surface: fields[0],
			Tags:    tags,
			Lemma:   fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("assets: reading lexicon: %w", err)
	}

	return lexicon.New(entries), nil
}

// LoadLexiconFile opens path and delegates to LoadLexicon.
func LoadLexiconFile(path string, log *zap.Logger) (*lexicon.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: opening lexicon %s: %w", path, err)
	}
	defer f.Close()
	return LoadLexicon(f, log)
}

// LoadSemanticDB parses the `atom\ttag1,tag2,...` format from r, with the
// same skip-and-warn handling for malformed lines as LoadLexicon.
func LoadSemanticDB(r io.Reader, log *zap.Logger) (*semanticdb.DB, error) {
	log = orNop(log)
	scanner := bufio.NewScanner(r)

	entries := make(map[string][]string)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 || fields[1] == "" {
			log.Warn("semantic-db: malformed line, skipping",
				zap.Int("line", lineNo), zap.String("content", line))
			continue
		}

		entries[fields[0]] = strings.Split(fields[1], ",")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("assets: reading semantic-db: %w", err)
	}

	return semanticdb.New(entries), nil
}

// LoadSemanticDBFile opens path and delegates to LoadSemanticDB.
func LoadSemanticDBFile(path string, log *zap.Logger) (*semanticdb.DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: opening semantic-db %s: %w", path, err)
	}
	defer f.Close()
	return LoadSemanticDB(f, log)
}

// parsePOSList parses a comma-separated POS tag list against the closed
// vocabulary, rejecting the whole line (ok=false) if any tag is unrecognized.
func parsePOSList(field string) ([]model.POS, bool) {
	parts := strings.Split(field, ",")
	tags := make([]model.POS, 0, len(parts))
	for _, p := range parts {
		tag, ok := posByName[strings.TrimSpace(p)]
		if !ok {
			return nil, false
		}
		tags = append(tags, tag)
	}
	return tags, true
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
