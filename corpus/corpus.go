// Package corpus generates the synthetic string collections used to exercise
// and benchmark the matching engine: uniform random strings, biological
// sequences, English-like words, path-like hierarchies, and error-perturbed
// queries. Every generator draws from an explicitly seeded source so a given
// seed always reproduces the same corpus.
package corpus

import (
	"fmt"
	"math/rand"
	"strings"
)

// Alphabets used by the generators.
const (
	Lowercase  = "abcdefghijklmnopqrstuvwxyz"
	DNABases   = "ATCG"
	AminoAcids = "ACDEFGHIKLMNPQRSTVWY"
)

var (
	wordPrefixes = []string{"pre", "un", "re", "in", "dis", "mis", "over", "under", "out", "up"}
	wordRoots    = []string{
		"test", "work", "play", "run", "jump", "walk", "talk", "read", "write", "sing",
		"dance", "cook", "clean", "build", "fix", "make", "take", "give", "find", "help",
	}
	wordSuffixes = []string{"ing", "ed", "er", "est", "ly", "tion", "sion", "ness", "ment", "able"}

	pathLevels = [][]string{
		{"sys", "usr", "var", "home", "opt", "tmp"},
		{"bin", "lib", "src", "data", "config", "cache"},
		{"main", "test", "util", "core", "api", "ui"},
		{"file", "module", "class", "func", "var", "const"},
	}
)

// Generator produces synthetic corpora from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded for reproducible output.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Random returns n strings of the given length drawn uniformly from
// alphabet. An empty alphabet means lowercase ASCII.
func (g *Generator) Random(n, length int, alphabet string) []string {
	if alphabet == "" {
		alphabet = Lowercase
	}
	out := make([]string, n)
	buf := make([]byte, length)
	for i := range out {
		for j := range buf {
			buf[j] = alphabet[g.rng.Intn(len(alphabet))]
		}
		out[i] = string(buf)
	}
	return out
}

// DNA returns n random nucleotide sequences of the given length.
func (g *Generator) DNA(n, length int) []string {
	return g.Random(n, length, DNABases)
}

// Protein returns n random sequences over the 20 amino-acid alphabet.
func (g *Generator) Protein(n, length int) []string {
	return g.Random(n, length, AminoAcids)
}

// Words returns n realistic-looking English words composed of an optional
// prefix (30%), a root, and an optional suffix (40%).
func (g *Generator) Words(n int) []string {
	out := make([]string, n)
	for i := range out {
		var b strings.Builder
		if g.rng.Float64() < 0.3 {
			b.WriteString(wordPrefixes[g.rng.Intn(len(wordPrefixes))])
		}
		b.WriteString(wordRoots[g.rng.Intn(len(wordRoots))])
		if g.rng.Float64() < 0.4 {
			b.WriteString(wordSuffixes[g.rng.Intn(len(wordSuffixes))])
		}
		out[i] = b.String()
	}
	return out
}

// Hierarchical returns n slash-joined path-like strings with the given
// number of levels. Levels beyond the fixed vocabularies become numbered
// items.
func (g *Generator) Hierarchical(n, levels int) []string {
	out := make([]string, n)
	parts := make([]string, levels)
	for i := range out {
		for level := 0; level < levels; level++ {
			if level < len(pathLevels) {
				names := pathLevels[level]
				parts[level] = names[g.rng.Intn(len(names))]
			} else {
				parts[level] = fmt.Sprintf("item%d", 1000+g.rng.Intn(9000))
			}
		}
		out[i] = strings.Join(parts, "/")
	}
	return out
}
