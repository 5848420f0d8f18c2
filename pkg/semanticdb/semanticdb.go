// Package semanticdb implements L1c: a static, read-only mapping from a
// token atom to its set of semantic tags (spec §4.6), and the Jaccard
// context score computed from it.
//
// Like gitrdm-gokando/pkg/minikanren/fact_store.go's FactStore, a DB is
// built once and then only ever queried — no locking is needed because
// nothing mutates it after New returns.
package semanticdb

import "sort"

// tagSet is an unordered set of semantic tag atoms.
type tagSet map[string]struct{}

func newTagSet(tags []string) tagSet {
	s := make(tagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// DB is an immutable token -> tag-set mapping built offline from the
// lexical-variation sources described in spec §1; at runtime it is
// read-only.
type DB struct {
	entries map[string]tagSet
}

// New builds a DB from a token -> tags mapping. The input is copied, so
// later mutation of the caller's map has no effect on the DB.
func New(entries map[string][]string) *DB {
	db := &DB{entries: make(map[string]tagSet, len(entries))}
	for token, tags := range entries {
		db.entries[token] = newTagSet(tags)
	}
	return db
}

// Tags returns the semantic tags for a token, or nil if the token has no
// entry.
func (db *DB) Tags(token string) []string {
	set, ok := db.entries[token]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the DB has an entry for token.
func (db *DB) Has(token string) bool {
	_, ok := db.entries[token]
	return ok
}

// TokensWithAnyTag returns every token in the DB whose tag set intersects
// tags, used by candidate generation (spec §4.7 step 1b: "entries whose
// semantic tags intersect the sentence's tag bag").
func (db *DB) TokensWithAnyTag(tags []string) []string {
	wanted := newTagSet(tags)
	var out []string
	for token, set := range db.entries {
		if intersects(set, wanted) {
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}

func intersects(a, b tagSet) bool {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for t := range small {
		if _, ok := big[t]; ok {
			return true
		}
	}
	return false
}

// ContextScore computes the Jaccard similarity between a candidate token's
// tags and the union of tags of a sentence's other content words:
// |T(cand) ∩ T(ctx)| / |T(cand) ∪ T(ctx)|. If either set is empty, the
// neutral default 0.5 is returned instead, per spec §4.6 and the Open
// Question resolution in spec §9 ("treat the examples in §8 as
// authoritative").
func (db *DB) ContextScore(candidate string, contextWords []string) float64 {
	candTags := db.entries[candidate]
	ctxTags := unionTags(db, contextWords)

	if len(candTags) == 0 || len(ctxTags) == 0 {
		return 0.5
	}

	inter := 0
	for t := range candTags {
		if _, ok := ctxTags[t]; ok {
			inter++
		}
	}
	union := len(candTags) + len(ctxTags) - inter
	if union == 0 {
		return 0.5
	}
	return float64(inter) / float64(union)
}

// unionTags returns the union of tag sets for every word in words that has
// an entry in the DB.
func unionTags(db *DB, words []string) tagSet {
	union := tagSet{}
	for _, w := range words {
		for t := range db.entries[w] {
			union[t] = struct{}{}
		}
	}
	return union
}
