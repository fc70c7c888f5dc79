package tokenizer

import "github.com/emirpasic/gods/v2/maps/linkedhashmap"

// PairCounts maps every adjacent pair occurring in a token sequence to its
// occurrence count. Pairs are kept in first-occurrence order; the trainer
// relies on that order to break frequency ties deterministically.
type PairCounts struct {
	counts *linkedhashmap.Map[Pair, int]
}

// CountPairs scans tokens once and counts adjacent pairs. A sequence shorter
// than two tokens yields an empty mapping. Pairs that do not occur are
// absent, not zero-valued.
func CountPairs(tokens []Token) *PairCounts {
	c := &PairCounts{counts: linkedhashmap.New[Pair, int]()}
	for i := 0; i+1 < len(tokens); i++ {
		p := Pair{tokens[i], tokens[i+1]}
		n, _ := c.counts.Get(p)
		c.counts.Put(p, n+1)
	}
	return c
}

// Get returns the count for p, or zero if p does not occur.
func (c *PairCounts) Get(p Pair) int {
	n, _ := c.counts.Get(p)
	return n
}

// Len returns the number of distinct pairs.
func (c *PairCounts) Len() int {
	return c.counts.Size()
}

// Pairs returns the distinct pairs in first-occurrence order.
func (c *PairCounts) Pairs() []Pair {
	return c.counts.Keys()
}

// Total returns the summed occurrence count across all pairs, which for a
// sequence of n >= 1 tokens is n-1.
func (c *PairCounts) Total() int {
	total := 0
	for _, n := range c.counts.Values() {
		total += n
	}
	return total
}

// Max returns the pair with the highest count. Ties break toward the pair
// inserted first, i.e. the one whose first occurrence in the scanned
// sequence is earliest. ok is false when the mapping is empty.
func (c *PairCounts) Max() (best Pair, count int, ok bool) {
	for _, p := range c.counts.Keys() {
		if n, _ := c.counts.Get(p); n > count {
			best, count = p, n
		}
	}
	return best, count, count > 0
}
