package scope

import (
	"sort"
	"strings"
)

// SimilarNames holds the result of a typo search for one unknown name,
// split by the namespace each candidate was found in.
type SimilarNames struct {
	Locals   []string
	Globals  []string
	Builtins []string

	// Best is the single most plausible replacement, or "" when the
	// candidates are too many or too different to pick one.
	Best string
}

// Empty reports whether no candidate was found anywhere.
func (s *SimilarNames) Empty() bool {
	return len(s.Locals) == 0 && len(s.Globals) == 0 && len(s.Builtins) == 0
}

// All returns the candidates of all namespaces, locals first, without
// duplicates.
func (s *SimilarNames) All() []string {
	var all []string
	seen := map[string]bool{}
	for _, group := range [][]string{s.Locals, s.Globals, s.Builtins} {
		for _, name := range group {
			if !seen[name] {
				seen[name] = true
				all = append(all, name)
			}
		}
	}
	return all
}

// GetSimilarNames searches the namespaces visible from frame for names
// similar to the unknown one.
func GetSimilarNames(name string, frame *Frame) *SimilarNames {
	result := &SimilarNames{}
	if frame == nil {
		return result
	}
	result.Locals = GetSimilarWords(name, frame.Locals().Names())
	result.Globals = GetSimilarWords(name, frame.Globals().Names())
	result.Builtins = GetSimilarWords(name, frame.Builtins().Names())

	// "len" is short enough to fall outside the similarity window of its
	// common misspellings, so it is matched explicitly.
	lower := strings.ToLower(name)
	if (lower == "length" || lower == "lenght") &&
		!contains(result.Locals, "len") && !contains(result.Globals, "len") {
		if frame.Builtins().Has("len") && !contains(result.Builtins, "len") {
			result.Builtins = append(result.Builtins, "len")
		}
	}

	all := result.All()
	if len(all) == 1 {
		result.Best = all[0]
	} else if len(result.Locals) == 1 {
		// A single local candidate wins over global and builtin noise.
		result.Best = result.Locals[0]
	}
	return result
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// GetSimilarWords returns the words most similar to the given one,
// ordered with case-insensitive matches first, then alphabetically.
//
// The edit-distance budget grows with the length of the word: short words
// only tolerate a single typo, while long words tolerate up to three.
// Candidates whose length is far from the word's are skipped outright.
func GetSimilarWords(word string, words []string) []string {
	if len(word) < 2 {
		return nil
	}
	var maxDistance, minLen, maxLen int
	switch {
	case len(word) <= 4:
		maxDistance, minLen, maxLen = 1, 2, 5
	case len(word) <= 8:
		maxDistance, minLen, maxLen = 2, 4, 10
	default:
		maxDistance, minLen, maxLen = 3, 7, 1<<31-1
	}

	similar := map[int][]string{}
	best := maxDistance + 1
	for _, candidate := range words {
		if candidate == word || len(candidate) < minLen || len(candidate) > maxLen {
			continue
		}
		distance, ok := damerauLevenshtein(word, candidate, maxDistance)
		if !ok {
			continue
		}
		similar[distance] = append(similar[distance], candidate)
		if distance < best {
			best = distance
		}
	}
	if best > maxDistance {
		return nil
	}
	matches := similar[best]
	sort.Slice(matches, func(i, j int) bool {
		iCase := strings.EqualFold(matches[i], word)
		jCase := strings.EqualFold(matches[j], word)
		if iCase != jCase {
			return iCase
		}
		return matches[i] < matches[j]
	})
	return matches
}

// damerauLevenshtein computes the edit distance between a and b, counting
// insertions, deletions, substitutions and transpositions of adjacent
// characters. The computation is abandoned as soon as every entry of the
// current row exceeds maxDistance, since the final distance can then no
// longer come back under the budget.
func damerauLevenshtein(a, b string, maxDistance int) (int, bool) {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb, lb <= maxDistance
	}
	if lb == 0 {
		return la, la <= maxDistance
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	current := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		current[0] = i
		rowMin := current[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			value := min3(
				prev[j]+1,        // deletion
				current[j-1]+1,   // insertion
				prev[j-1]+cost,   // substitution
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if transposed := prev2[j-2] + 1; transposed < value {
					value = transposed
				}
			}
			current[j] = value
			if value < rowMin {
				rowMin = value
			}
		}
		if rowMin > maxDistance {
			return 0, false
		}
		prev2, prev, current = prev, current, prev2
	}
	distance := prev[lb]
	return distance, distance <= maxDistance
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
