package prefixtrie

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TieBreak selects among approximate candidates that need the same number of
// corrections.
type TieBreak int

const (
	// TieBreakFirstInserted prefers the entry that appeared earliest in the
	// construction sequence. This is the default.
	TieBreakFirstInserted TieBreak = iota
	// TieBreakLexicographic prefers the byte-wise smallest entry.
	TieBreakLexicographic
)

const noEntry int32 = -1

// edge is one labelled transition out of a node. Edge lists are kept sorted
// by label so traversal order is deterministic and a child lookup is a
// binary search.
type edge struct {
	label byte
	next  int32
}

// node is one prefix position. entry indexes the entry terminating here,
// or noEntry. A node can be both a branch point and a terminal, since one
// entry may be a prefix of another.
type node struct {
	edges []edge
	entry int32
}

// Trie is an immutable prefix tree over a fixed collection of strings. It
// answers exact lookups and bounded edit-distance searches. Once New
// returns, nothing mutates the structure, so concurrent queries are safe
// without locking.
type Trie struct {
	nodes   []node
	entries []string // original spellings, first occurrence wins
	keys    []string // canonical forms spelled by the tree paths

	allowIndels bool
	normalised  bool
	caseFold    bool
	tieBreak    TieBreak
}

// Option configures construction.
type Option func(*Trie)

// WithNormalisation strips combining marks from entries and queries
// (NFD, remove marks, NFC), so Jurg finds Jürg. Matches still surface the
// original spelling.
func WithNormalisation() Option {
	return func(t *Trie) { t.normalised = true }
}

// CaseInsensitive folds entries and queries to lower case before matching.
func CaseInsensitive() Option {
	return func(t *Trie) { t.caseFold = true }
}

// WithTieBreak sets the secondary order among approximate candidates with
// equal correction counts.
func WithTieBreak(tb TieBreak) Option {
	return func(t *Trie) { t.tieBreak = tb }
}

// New builds the index over entries. allowIndels fixes, for the lifetime of
// the engine, whether searches may insert and delete characters; without it
// only zero-budget exact queries are legal.
//
// Duplicate entries collapse onto one path, so construction is idempotent.
// The empty string is a valid zero-length entry terminal at the root. The
// result is a pure function of the entry sequence and options.
func New(entries []string, allowIndels bool, opts ...Option) (*Trie, error) {
	t := &Trie{allowIndels: allowIndels}
	for _, opt := range opts {
		opt(t)
	}
	size := 1
	for _, e := range entries {
		size += len(e)
	}
	t.nodes = make([]node, 1, size)
	t.nodes[0].entry = noEntry
	for _, e := range entries {
		key, err := t.canonical(e)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %q", e)
		}
		t.insert(key, e)
	}
	return t, nil
}

// canonical maps a string to the form actually stored in the tree.
func (t *Trie) canonical(s string) (string, error) {
	if t.normalised {
		stripped, _, err := transform.String(markStripper(), s)
		if err != nil {
			return "", err
		}
		s = stripped
	}
	if t.caseFold {
		s = strings.ToLower(s)
	}
	return s, nil
}

func markStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func (t *Trie) insert(key, original string) {
	cur := int32(0)
	for i := 0; i < len(key); i++ {
		cur = t.extend(cur, key[i])
	}
	if t.nodes[cur].entry == noEntry {
		t.nodes[cur].entry = int32(len(t.entries))
		t.entries = append(t.entries, original)
		t.keys = append(t.keys, key)
	}
}

// extend returns the child of n labelled c, creating it if absent and
// keeping the edge list sorted.
func (t *Trie) extend(n int32, c byte) int32 {
	es := t.nodes[n].edges
	i := sort.Search(len(es), func(i int) bool { return es[i].label >= c })
	if i < len(es) && es[i].label == c {
		return es[i].next
	}
	child := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{entry: noEntry})
	es = append(es, edge{})
	copy(es[i+1:], es[i:])
	es[i] = edge{label: c, next: child}
	t.nodes[n].edges = es
	return child
}

// child returns the node reached from n over label c. This is the only
// traversal primitive; all matching policy lives in the search engine.
func (t *Trie) child(n int32, c byte) (int32, bool) {
	es := t.nodes[n].edges
	lo, hi := 0, len(es)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if es[mid].label < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(es) && es[lo].label == c {
		return es[lo].next, true
	}
	return 0, false
}

// Len reports the number of distinct entries in the index.
func (t *Trie) Len() int { return len(t.entries) }

// NodeCount reports the number of tree nodes, at most one more than the
// total character count of the distinct entries.
func (t *Trie) NodeCount() int { return len(t.nodes) }

// AllowsIndels reports whether the engine was built to permit insertions
// and deletions during approximate search.
func (t *Trie) AllowsIndels() bool { return t.allowIndels }

// Entries returns the stored entries in insertion order.
func (t *Trie) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}
