package tokenizer

// Train learns a merge table from corpus. Starting from one token per UTF-8
// byte, it repeatedly counts adjacent pairs, merges the most frequent one
// into the next free id, and rewrites the sequence, until numMerges rules
// have been learned or no pairs remain. Frequency ties break toward the
// pair whose first occurrence in the sequence is earliest, so the same
// corpus and budget always produce the same table.
//
// A budget of zero or less, or a corpus shorter than two bytes, yields an
// empty table; insufficient data only shortens the table, never fails.
func Train(corpus string, numMerges int) *MergeTable {
	table := emptyMergeTable(max(numMerges, 0))
	tokens := byteTokens(corpus)
	for len(table.rules) < numMerges {
		best, _, ok := CountPairs(tokens).Max()
		if !ok {
			break
		}
		id := table.append(best)
		tokens = replacePair(tokens, best, id)
	}
	return table
}

// replacePair rewrites tokens in a single left-to-right, non-overlapping
// pass, substituting id for every occurrence of p. When potential matches
// overlap, such as (a, a) meeting three identical tokens, the earliest one
// wins: its right token is consumed and cannot start the next match.
func replacePair(tokens []Token, p Pair, id Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+1 < len(tokens) && tokens[i] == p.Left && tokens[i+1] == p.Right {
			out = append(out, id)
			i += 2
		} else {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}
