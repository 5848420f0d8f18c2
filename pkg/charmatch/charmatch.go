// Package charmatch implements L1a: character-level similarity between two
// tokens (spec §4.4). It is one of the three pure base scorers the
// Disambiguator blends; it performs no I/O and holds no state.
package charmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Score computes the character similarity of a and b in [0,1]:
// case-insensitive, accent-folded, and a strictly monotonic function of the
// normalized edit distance: 1 - edit_distance/max(|a|,|b|). Edit distance
// counts insertions, deletions, substitutions, and adjacent transpositions
// as unit cost (Damerau-Levenshtein).
//
// Empty-input edge case: if either token is empty, the score is 0 unless
// both are empty, in which case it is 1.
func Score(a, b string) float64 {
	fa := fold(a)
	fb := fold(b)

	if len(fa) == 0 || len(fb) == 0 {
		if len(fa) == 0 && len(fb) == 0 {
			return 1
		}
		return 0
	}

	dist := EditDistance(a, b)
	maxLen := len(fa)
	if len(fb) > maxLen {
		maxLen = len(fb)
	}
	return 1 - float64(dist)/float64(maxLen)
}

// EditDistance returns the Damerau-Levenshtein distance between the
// case/accent-folded forms of a and b. Used directly by candidate
// generation (spec §4.7 step 1a: "lexicon entries within edit-distance ≤ k
// of the target"), which needs the raw distance rather than the
// normalized [0,1] score.
func EditDistance(a, b string) int {
	return damerauLevenshtein(fold(a), fold(b))
}

// fold lowercases, NFD-decomposes, and strips combining marks so that
// "Roma", "ROMA", and "róma" all compare as "roma". Returned as a rune
// slice since Spanish text routinely contains multi-byte runes.
func fold(s string) []rune {
	lowered := strings.ToLower(s)
	decomposed := norm.NFD.String(lowered)

	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark, e.g. the accent stripped from "ó"
		}
		out = append(out, r)
	}
	return out
}

// damerauLevenshtein computes the optimal-string-alignment edit distance
// between two rune slices, where a transposition of two adjacent runes
// costs one operation rather than two substitutions.
func damerauLevenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			best := min3(del, ins, sub)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if trans := d[i-2][j-2] + 1; trans < best {
					best = trans
				}
			}

			d[i][j] = best
		}
	}

	return d[la][lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
