package tokenizer

// Pair is an adjacent token bigram: token A immediately followed by token B.
type Pair struct {
	A, B int64
}

// countPairs maps every adjacent pair in ids to the number of times it
// occurs. Sequences shorter than two tokens yield an empty map.
func countPairs(ids []int64) map[Pair]int {
	counts := make(map[Pair]int)
	for i := 0; i+1 < len(ids); i++ {
		counts[Pair{ids[i], ids[i+1]}]++
	}
	return counts
}

// maxPair returns the most frequent pair and its count. Ties are broken by
// the smallest (A, B) ordering, so the result never depends on map iteration
// order; training and encoding rely on that to make the same decisions on the
// same sequence. An empty map yields the zero Pair with count 0.
func maxPair(counts map[Pair]int) (Pair, int) {
	var best Pair
	bestCount := 0
	for p, c := range counts {
		if c > bestCount || (c == bestCount && (p.A < best.A || (p.A == best.A && p.B < best.B))) {
			best = p
			bestCount = c
		}
	}
	return best, bestCount
}

// replacePairInPlace rewrites ids so that every non-overlapping occurrence of
// p becomes newID. Scanning is strictly left to right and a replacement
// consumes both tokens, so [a, a, a] merged on (a, a) gives [new, a]. The
// rewrite reuses the backing array; the returned slice is ids truncated to
// the new length.
func replacePairInPlace(ids []int64, p Pair, newID int64) []int64 {
	out := ids[:0]
	i := 0
	for i < len(ids) {
		if i+1 < len(ids) && ids[i] == p.A && ids[i+1] == p.B {
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}
