// Package features maintains point-in-time-correct running statistics for
// teams and players, and assembles fixed-order feature vectors from them.
//
// The central invariant is no-lookahead: a feature snapshot taken before
// Update is called with a game's own logs must never reflect that game's
// outcome. Callers snapshot first, then update.
//
// Team state is scoped to a single (team, season) pair and never carries
// across seasons. Player state is scoped to a single generation run.
package features
