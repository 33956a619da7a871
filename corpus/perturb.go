package corpus

// PerturbQueries derives one query per entry. Half the entries come back
// verbatim; the rest receive one or two random substitute, insert or delete
// edits drawn from the alphabet actually present in the entries, modelling
// the typo rate of a real query stream.
func (g *Generator) PerturbQueries(entries []string) []string {
	alphabet := distinctBytes(entries)
	queries := make([]string, len(entries))
	for i, entry := range entries {
		if g.rng.Float64() < 0.5 {
			queries[i] = g.perturb(entry, alphabet)
		} else {
			queries[i] = entry
		}
	}
	return queries
}

func (g *Generator) perturb(entry string, alphabet []byte) string {
	q := []byte(entry)
	edits := 1
	if len(entry) > 1 && g.rng.Intn(2) == 1 {
		edits = 2
	}
	for e := 0; e < edits; e++ {
		if len(q) == 0 {
			break
		}
		pos := g.rng.Intn(len(q))
		switch g.rng.Intn(3) {
		case 0: // substitute
			q[pos] = alphabet[g.rng.Intn(len(alphabet))]
		case 1: // insert
			q = append(q, 0)
			copy(q[pos+1:], q[pos:])
			q[pos] = alphabet[g.rng.Intn(len(alphabet))]
		default: // delete
			q = append(q[:pos], q[pos+1:]...)
		}
	}
	return string(q)
}

// distinctBytes collects the sorted set of bytes appearing in entries,
// falling back to lowercase ASCII for an empty corpus.
func distinctBytes(entries []string) []byte {
	var seen [256]bool
	for _, e := range entries {
		for i := 0; i < len(e); i++ {
			seen[e[i]] = true
		}
	}
	out := make([]byte, 0, 64)
	for b := 0; b < 256; b++ {
		if seen[b] {
			out = append(out, byte(b))
		}
	}
	if len(out) == 0 {
		out = []byte(Lowercase)
	}
	return out
}
