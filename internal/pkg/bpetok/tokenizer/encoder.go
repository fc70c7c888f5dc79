package tokenizer

// Encode converts text to its UTF-8 byte tokens and applies table merges in
// repeated left-to-right passes until a pass performs no merge. Empty text
// yields an empty sequence; an empty table returns the raw bytes unchanged.
//
// Application is positional-greedy: a pair is merged as soon as the scan
// reaches it, on table membership alone, and the scan does not advance past
// a merge, so the new token may immediately absorb its right neighbor in
// the same pass. This differs from lowest-rank-first BPE when two eligible
// pairs compete for the same token at different priorities; tables trained
// by Train depend on exactly this order, so it must not be changed.
//
// Each pass either merges nothing or shrinks the sequence by at least one
// token, so encoding terminates within len(text) passes.
func Encode(text string, table *MergeTable) []Token {
	tokens := byteTokens(text)
	for {
		next, merged := mergePass(tokens, table)
		if !merged {
			return next
		}
		tokens = next
	}
}

// mergePass performs one full scan, building the next sequence. Each output
// token greedily absorbs right neighbors while the resulting pair stays in
// the table, which is equivalent to merging in place without advancing the
// scan position. merged reports whether any merge occurred.
func mergePass(tokens []Token, table *MergeTable) ([]Token, bool) {
	if len(tokens) < 2 {
		return tokens, false
	}
	out := make([]Token, 0, len(tokens))
	merged := false
	for i := 0; i < len(tokens); {
		cur := tokens[i]
		i++
		for i < len(tokens) {
			id, ok := table.ids[Pair{cur, tokens[i]}]
			if !ok {
				break
			}
			cur = id
			i++
			merged = true
		}
		out = append(out, cur)
	}
	return out, merged
}
