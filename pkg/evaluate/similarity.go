// Package evaluate scores the regex-based speech extraction against an
// independently produced reference extraction. It aligns the two speech
// lists with exact-then-fuzzy matching, flags duplicates, and computes
// precision, recall, and F1.
package evaluate

// Similarity scores how alike two strings are, in [0, 1]. Implementations
// must be deterministic and safe for concurrent use. The strategy is
// pluggable so matching thresholds can be tuned and tested independently of
// the alignment algorithm.
type Similarity interface {
	Ratio(a, b string) float64
}

// SequenceRatio computes the classic matching-blocks ratio
// 2*M / (len(a)+len(b)), where M is the total length of the longest
// matching blocks found recursively. Comparison is rune-wise.
type SequenceRatio struct{}

// Ratio returns the similarity of a and b in [0, 1]. Two empty strings
// score 0.
func (SequenceRatio) Ratio(a, b string) float64 {
	runesA, runesB := []rune(a), []rune(b)
	total := len(runesA) + len(runesB)
	if total == 0 {
		return 0
	}
	matched := matchingTotal(runesA, runesB, 0, len(runesA), 0, len(runesB))
	return 2 * float64(matched) / float64(total)
}

// matchingTotal sums the lengths of all matching blocks between
// a[alo:ahi] and b[blo:bhi], splitting recursively around the longest one.
func matchingTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchingTotal(a, b, alo, i, blo, j) +
		matchingTotal(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest block of equal runes between a[alo:ahi]
// and b[blo:bhi], returning its start offsets and length.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestSize int) {
	indexB := make(map[rune][]int)
	for j := blo; j < bhi; j++ {
		indexB[b[j]] = append(indexB[b[j]], j)
	}

	besti, bestj = alo, blo
	lengthEndingAt := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range indexB[a[i]] {
			length := lengthEndingAt[j-1] + 1
			next[j] = length
			if length > bestSize {
				besti, bestj, bestSize = i-length+1, j-length+1, length
			}
		}
		lengthEndingAt = next
	}

	return besti, bestj, bestSize
}

// Levenshtein computes the edit distance between two strings, rune-wise.
func Levenshtein(a, b string) int {
	runesA, runesB := []rune(a), []rune(b)
	if len(runesA) < len(runesB) {
		runesA, runesB = runesB, runesA
	}
	if len(runesB) == 0 {
		return len(runesA)
	}

	previous := make([]int, len(runesB)+1)
	current := make([]int, len(runesB)+1)
	for j := range previous {
		previous[j] = j
	}

	for i, ca := range runesA {
		current[0] = i + 1
		for j, cb := range runesB {
			cost := 0
			if ca != cb {
				cost = 1
			}
			current[j+1] = minInt(previous[j+1]+1, current[j]+1, previous[j]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(runesB)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
