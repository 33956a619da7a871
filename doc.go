/*
Package prefixtrie implements an immutable prefix tree with exact and
budgeted approximate matching over a fixed collection of strings.

The index is built once from an entry sequence and never mutated, so any
number of goroutines may query it concurrently without locking. Exact
lookups walk the tree in O(len(query)); approximate lookups explore the
tree under an edit-distance budget and return the closest entry within it.
*/
package prefixtrie
