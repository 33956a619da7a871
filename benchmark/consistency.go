package benchmark

import (
	"fmt"

	"github.com/austinv11/PrefixTrie/reference"
)

// Validate checks engine outcomes against the construction set and the
// reference distance metric: every found entry must belong to the set, lie
// within budget of its query, and carry an exact flag that agrees with a
// zero distance. The returned slice is empty when everything holds.
func Validate(entries []string, outcomes []Outcome, budget int) []string {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	var problems []string
	for i, o := range outcomes {
		if !o.Found {
			if o.Exact {
				problems = append(problems, fmt.Sprintf("outcome %d: exact flag set without a match", i))
			}
			continue
		}
		if _, ok := set[o.Entry]; !ok {
			problems = append(problems, fmt.Sprintf("outcome %d: %q not in construction set", i, o.Entry))
			continue
		}
		d := reference.Distance(o.Query, o.Entry)
		if d > budget {
			problems = append(problems, fmt.Sprintf("outcome %d: %q is %d edits from %q, budget %d", i, o.Entry, d, o.Query, budget))
		}
		if o.Exact != (d == 0) {
			problems = append(problems, fmt.Sprintf("outcome %d: exact flag %v disagrees with distance %d", i, o.Exact, d))
		}
	}
	return problems
}

// CrossCheck compares engine outcomes against reference outcomes for the
// same query stream. Both sides break ties toward the first-inserted entry,
// so they must agree on the entry as well as the flags.
func CrossCheck(trie, ref []Outcome) []string {
	var problems []string
	if len(trie) != len(ref) {
		return []string{fmt.Sprintf("outcome counts differ: %d vs %d", len(trie), len(ref))}
	}
	for i := range trie {
		t, r := trie[i], ref[i]
		switch {
		case t.Found != r.Found:
			problems = append(problems, fmt.Sprintf("query %q: trie found=%v, reference found=%v", t.Query, t.Found, r.Found))
		case t.Found && t.Entry != r.Entry:
			problems = append(problems, fmt.Sprintf("query %q: trie matched %q, reference matched %q", t.Query, t.Entry, r.Entry))
		case t.Exact != r.Exact:
			problems = append(problems, fmt.Sprintf("query %q: trie exact=%v, reference exact=%v", t.Query, t.Exact, r.Exact))
		}
	}
	return problems
}
