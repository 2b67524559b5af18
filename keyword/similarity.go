package keyword

import "github.com/pagelens/pagelens"

// Similarity weights: the blend favors edit distance over token overlap.
const (
	similarityExact       = 100.0
	similarityContainment = 90.0
	levenshteinWeight     = 0.6
	tokenOverlapWeight    = 0.4
)

// Similarity scores two keywords from 0 to 100. Exact matches score 100,
// containment scores 90, and everything else blends Levenshtein ratio with
// token overlap. The function is symmetric and similarity(k,k) is 100 for
// any non-empty k.
func Similarity(k1, k2 string) float64 {
	a := pagelens.NormalizeKeyword(k1)
	b := pagelens.NormalizeKeyword(k2)

	switch {
	case a == "" || b == "":
		return 0
	case a == b:
		return similarityExact
	case contains(a, b) || contains(b, a):
		return similarityContainment
	}

	lev := 1 - float64(levenshtein(a, b))/float64(max(len([]rune(a)), len([]rune(b))))
	overlap := tokenOverlap(a, b)

	return round2(levenshteinWeight*lev*100 + tokenOverlapWeight*overlap*100)
}

func contains(haystack, needle string) bool {
	if len(needle) >= len(haystack) {
		return false
	}
	// Whole-word containment: "coffee maker" contains "coffee" but
	// "scoffed" does not.
	re, err := keywordPattern(needle)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}

// levenshtein computes the edit distance between two strings, in runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// tokenOverlap is the Jaccard coefficient over the keywords' word sets.
func tokenOverlap(a, b string) float64 {
	setA := map[string]bool{}
	for _, t := range tokenize(a) {
		setA[t] = true
	}
	setB := map[string]bool{}
	for _, t := range tokenize(b) {
		setB[t] = true
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
