package exercisedb

import (
	"slices"
	"strings"
)

// minWordLen is the shortest query word considered by the fuzzy tiers.
const minWordLen = 3

// Lookup resolves a free-text exercise name to an entry. Tiers are tried in
// order and the first hit wins:
//
//  1. exact lowercase name
//  2. the shortest key containing every query word
//  3. the shortest key starting with the first word and containing the second
//
// Words shorter than three characters are ignored. Ties on length go to the
// key loaded first.
func (t *Table) Lookup(name string) (Entry, bool) {
	if t == nil || name == "" {
		return Entry{}, false
	}

	key := strings.ToLower(name)

	if e, ok := t.entries[key]; ok {
		return e, true
	}

	words := queryWords(key)

	if k, ok := t.shortest(func(k string) bool {
		for _, w := range words {
			if !strings.Contains(k, w) {
				return false
			}
		}

		return true
	}); ok {
		return t.entries[k], true
	}

	if len(words) >= 2 {
		if k, ok := t.shortest(func(k string) bool {
			return strings.HasPrefix(k, words[0]) &&
				strings.Contains(k, words[1])
		}); ok {
			return t.entries[k], true
		}
	}

	return Entry{}, false
}

// shortest returns the shortest key satisfying match. SortStableFunc keeps
// load order among keys of equal length.
func (t *Table) shortest(match func(string) bool) (string, bool) {
	var candidates []string

	for _, k := range t.keys {
		if match(k) {
			candidates = append(candidates, k)
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	slices.SortStableFunc(candidates, func(a, b string) int {
		return len(a) - len(b)
	})

	return candidates[0], true
}

func queryWords(s string) []string {
	fields := strings.Fields(s)

	words := fields[:0]

	for _, f := range fields {
		if len(f) >= minWordLen {
			words = append(words, f)
		}
	}

	return words
}
