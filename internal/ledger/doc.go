// Package ledger derives read-only views from a list of transactions: totals
// against a budget, filter vocabularies, filtered listings, the canonical
// report order and top-spending rankings.
//
// Every function here is pure. Inputs are never mutated and results depend
// only on the arguments, so callers may recompute on every state change.
package ledger
