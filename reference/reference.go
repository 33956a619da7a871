// Package reference provides a deliberately simple linear-scan fuzzy
// matcher: a full Levenshtein computation against every entry per query.
// It is the oracle the tree engine is benchmarked and cross-checked
// against, so it shares no code with the engine.
package reference

// Distance returns the Levenshtein distance between a and b over bytes,
// using the classic two-row dynamic program.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = minInt(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// BoundedDistance reports the distance between a and b when it does not
// exceed max, cutting the computation short as soon as every cell in a row
// is already over the bound.
func BoundedDistance(a, b string, max int) (int, bool) {
	if max < 0 {
		return 0, false
	}
	if lenDiff := len(a) - len(b); lenDiff > max || -lenDiff > max {
		return 0, false
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = minInt(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > max {
			return 0, false
		}
		prev, cur = cur, prev
	}
	if d := prev[len(b)]; d <= max {
		return d, true
	}
	return 0, false
}

func minInt(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Matcher scans a fixed entry collection per query. It mirrors the engine's
// contract (closest entry within budget, ties to the first-inserted entry)
// computed the slow way.
type Matcher struct {
	entries []string
	set     map[string]struct{}
}

// NewMatcher builds a matcher over entries; duplicates collapse, keeping
// first-insertion order.
func NewMatcher(entries []string) *Matcher {
	m := &Matcher{set: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		if _, dup := m.set[e]; dup {
			continue
		}
		m.set[e] = struct{}{}
		m.entries = append(m.entries, e)
	}
	return m
}

// SearchExact reports whether query is an entry.
func (m *Matcher) SearchExact(query string) (string, bool) {
	if _, ok := m.set[query]; ok {
		return query, true
	}
	return "", false
}

// Search returns the entry closest to query within budget and its distance.
// Entries are scanned in insertion order, so the first entry at the minimum
// distance wins.
func (m *Matcher) Search(query string, budget int) (string, int, bool) {
	if _, ok := m.set[query]; ok {
		return query, 0, true
	}
	best := ""
	bestDist := budget + 1
	found := false
	for _, e := range m.entries {
		if d, ok := BoundedDistance(query, e, bestDist-1); ok && d < bestDist {
			best, bestDist, found = e, d, true
			if bestDist == 1 {
				break
			}
		}
	}
	if !found {
		return "", 0, false
	}
	return best, bestDist, true
}
