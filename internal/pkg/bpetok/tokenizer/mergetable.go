package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MergeRule is one learned merge: Pair is replaced by ID, and Rank is the
// rule's position in training order. ID is always FirstMergeID + Rank.
type MergeRule struct {
	Pair Pair
	Rank int
	ID   Token
}

// MergeTable is the ordered list of merge rules produced by one training
// run, plus a derived pair-to-id lookup used during encoding. Order is
// significant: it records the sequence in which merges were learned and is
// the only state an encoder needs. A table is immutable once built.
type MergeTable struct {
	rules []MergeRule
	ids   map[Pair]Token
}

// NewMergeTable builds a table from an ordered list of pairs, assigning
// rank by position. It rejects duplicate pairs and rules that reference a
// token id not yet defined at their rank.
func NewMergeTable(pairs []Pair) (*MergeTable, error) {
	t := emptyMergeTable(len(pairs))
	for rank, p := range pairs {
		if err := t.push(p); err != nil {
			return nil, fmt.Errorf("rule %d: %w", rank, err)
		}
	}
	return t, nil
}

func emptyMergeTable(capacity int) *MergeTable {
	return &MergeTable{ids: make(map[Pair]Token, capacity)}
}

// push validates p against the table built so far and appends it.
func (t *MergeTable) push(p Pair) error {
	if id, dup := t.ids[p]; dup {
		return fmt.Errorf("duplicate pair (%d, %d), already merged into %d", p.Left, p.Right, id)
	}
	next := FirstMergeID + Token(len(t.rules))
	if p.Left >= next || p.Right >= next {
		return fmt.Errorf("pair (%d, %d) references a token id not defined before id %d", p.Left, p.Right, next)
	}
	t.append(p)
	return nil
}

// append adds p without validation. The trainer learns each pair from a
// sequence that only contains already-defined ids and removes every
// occurrence of the pair it merges, so its rules satisfy the table
// invariants by construction.
func (t *MergeTable) append(p Pair) Token {
	id := FirstMergeID + Token(len(t.rules))
	t.rules = append(t.rules, MergeRule{Pair: p, Rank: len(t.rules), ID: id})
	t.ids[p] = id
	return id
}

// Len returns the number of rules.
func (t *MergeTable) Len() int {
	return len(t.rules)
}

// Rules returns the rules in rank order.
func (t *MergeTable) Rules() []MergeRule {
	rules := make([]MergeRule, len(t.rules))
	copy(rules, t.rules)
	return rules
}

// ID returns the resulting token id for p, if p is a learned merge.
func (t *MergeTable) ID(p Pair) (Token, bool) {
	id, ok := t.ids[p]
	return id, ok
}

// Write serializes the table as line-delimited "left right" id pairs in
// rank order, preceded by a short comment header. Rank is implicit in line
// position, so reordering the lines would silently reassign ids.
func (t *MergeTable) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# bpetok merges v1\n")
	fmt.Fprintf(bw, "# num_merges %d\n", len(t.rules))
	for _, r := range t.rules {
		fmt.Fprintf(bw, "%d %d\n", r.Pair.Left, r.Pair.Right)
	}
	return bw.Flush()
}

// Save writes the serialized table to path.
func (t *MergeTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create merge table file: %w", err)
	}
	defer f.Close()
	return t.Write(f)
}

// ReadMergeTable parses a serialized table. Blank lines and #-prefixed
// comments are ignored. Malformed lines, duplicate pairs, and forward id
// references are rejected here, at the boundary, so the encode loop can
// assume a well-formed table.
func ReadMergeTable(r io.Reader) (*MergeTable, error) {
	t := emptyMergeTable(0)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parseRule(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if err := t.push(p); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read merge table: %w", err)
	}
	return t, nil
}

func parseRule(line string) (Pair, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Pair{}, fmt.Errorf("malformed merge rule %q, want two token ids", line)
	}
	left, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Pair{}, fmt.Errorf("malformed left token id %q: %w", fields[0], err)
	}
	right, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return Pair{}, fmt.Errorf("malformed right token id %q: %w", fields[1], err)
	}
	return Pair{Token(left), Token(right)}, nil
}

// LoadMergeTable reads and validates a serialized table from path.
func LoadMergeTable(path string) (*MergeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open merge table file: %w", err)
	}
	defer f.Close()
	t, err := ReadMergeTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
