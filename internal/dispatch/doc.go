// Package dispatch executes one push against a set of remotes and
// reconciles the per-remote results into a single summary.
//
// Remotes are fully independent: one remote failing or hanging never
// blocks or cancels the others. Completion order in concurrent mode is
// non-deterministic, so each remote writes into a pre-allocated slot
// and the reported order always matches the request order.
package dispatch
