package prefixtrie

import "github.com/cockroachdb/errors"

// Result is the outcome of one query. Check Found before Entry: the empty
// string is a legal entry, so a zero Entry alone does not mean no match.
type Result struct {
	Entry       string
	Found       bool
	Exact       bool // the match needed zero corrections
	Corrections int  // edit operations charged to the winning match
}

// Contains reports whether query is an entry, by an exact walk.
func (t *Trie) Contains(query string) bool {
	r, err := t.Search(query, 0)
	return err == nil && r.Found
}

// Search returns the closest entry to query within the correction budget.
//
// A budget of zero performs a pure exact lookup in O(len(query)), legal in
// both indel modes. A positive budget requires an engine built with indels
// and explores match/substitute, insert and delete moves, each non-verbatim
// move charging one correction; the cheapest reachable entry wins, ties
// resolved by the configured TieBreak. No match within budget is not an
// error: the zero Result is returned.
func (t *Trie) Search(query string, budget int) (Result, error) {
	if budget < 0 {
		return Result{}, errors.Wrapf(ErrNegativeBudget, "budget %d", budget)
	}
	if budget > 0 && !t.allowIndels {
		return Result{}, errors.Wrapf(ErrIndelsDisabled, "budget %d", budget)
	}
	key, err := t.canonical(query)
	if err != nil {
		return Result{}, errors.Wrapf(err, "query %q", query)
	}
	if e, ok := t.walk(key); ok {
		return Result{Entry: t.entries[e], Found: true, Exact: true}, nil
	}
	if budget == 0 {
		return Result{}, nil
	}
	if e, used, ok := t.explore(key, budget); ok {
		return Result{Entry: t.entries[e], Found: true, Corrections: used}, nil
	}
	return Result{}, nil
}

// walk follows the unique child for each query byte. It succeeds iff the
// whole query is consumed on a terminal node.
func (t *Trie) walk(key string) (int32, bool) {
	cur := int32(0)
	for i := 0; i < len(key); i++ {
		next, ok := t.child(cur, key[i])
		if !ok {
			return 0, false
		}
		cur = next
	}
	if e := t.nodes[cur].entry; e != noEntry {
		return e, true
	}
	return 0, false
}

// state is one point on the search wavefront: a tree position, a query
// position, and the corrections spent reaching them.
type state struct {
	node int32
	pos  int32
	used int32
}

// explore runs the budgeted edit-distance search from the root. The
// wavefront is an explicit stack rather than recursion, and a visited map
// records the cheapest cost per (node, position) pair so each pair is
// expanded at most once per improvement. Together with the budget cutoff
// this bounds the walk even when the budget exceeds the query length.
//
// Only called after the exact walk has missed, so every candidate here
// costs at least one correction.
func (t *Trie) explore(key string, budget int) (int32, int, bool) {
	bestEntry := noEntry
	bestUsed := int32(budget) + 1
	visited := make(map[int64]int32)
	stack := make([]state, 1, 64)
	stack[0] = state{node: 0, pos: 0, used: 0}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.used > bestUsed {
			continue
		}
		vk := int64(s.node)<<32 | int64(s.pos)
		if prev, ok := visited[vk]; ok && prev <= s.used {
			continue
		}
		visited[vk] = s.used

		canEdit := int(s.used) < budget
		if int(s.pos) == len(key) {
			if e := t.nodes[s.node].entry; e != noEntry {
				if s.used < bestUsed || (s.used == bestUsed && t.prefer(e, bestEntry)) {
					bestEntry, bestUsed = e, s.used
				}
			}
		} else if canEdit {
			// delete: consume a query byte without moving in the tree
			stack = append(stack, state{node: s.node, pos: s.pos + 1, used: s.used + 1})
		}
		for _, ed := range t.nodes[s.node].edges {
			if canEdit {
				// insert: follow a tree edge without consuming a query byte
				stack = append(stack, state{node: ed.next, pos: s.pos, used: s.used + 1})
			}
			if int(s.pos) < len(key) {
				if ed.label == key[s.pos] {
					stack = append(stack, state{node: ed.next, pos: s.pos + 1, used: s.used})
				} else if canEdit {
					// substitute
					stack = append(stack, state{node: ed.next, pos: s.pos + 1, used: s.used + 1})
				}
			}
		}
	}
	if bestEntry == noEntry {
		return 0, 0, false
	}
	return bestEntry, int(bestUsed), true
}

// prefer reports whether candidate e beats best under the configured
// tie-break. best may be noEntry when nothing has been recorded yet.
func (t *Trie) prefer(e, best int32) bool {
	if best == noEntry {
		return true
	}
	if t.tieBreak == TieBreakLexicographic {
		return t.entries[e] < t.entries[best]
	}
	return e < best
}
