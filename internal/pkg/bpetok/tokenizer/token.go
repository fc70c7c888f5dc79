// Package tokenizer implements byte-level byte-pair encoding: training a
// merge table from a corpus and applying it to encode text into token ids.
package tokenizer

// Token is a vocabulary id. Ids 0-255 stand for raw byte values; ids from
// FirstMergeID up stand for learned merges.
type Token uint32

// FirstMergeID is the id assigned to the merge learned first. A rule's
// resulting id is always FirstMergeID + rank.
const FirstMergeID Token = 256

// Pair is two adjacent tokens considered as a merge candidate.
type Pair struct {
	Left, Right Token
}

// byteTokens converts text to its initial token sequence, one token per
// UTF-8 byte. Multi-byte characters become multiple tokens; merges operate
// below the character boundary.
func byteTokens(text string) []Token {
	tokens := make([]Token, len(text))
	for i := 0; i < len(text); i++ {
		tokens[i] = Token(text[i])
	}
	return tokens
}
