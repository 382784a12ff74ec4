// Package world runs one player's generation session: resolve options,
// build the catalogs, build the region graph, prune the item pool and lock
// the victory items, in that order and exactly once each.
//
// A Session is a one-way state machine:
//
//	Unconfigured → OptionsResolved → CataloguesBuilt → GraphBuilt
//	             → PoolPruned → VictoryLocked → Done
//
// Calling a step out of order returns ErrPhase and leaves the session as
// it was. A step that fails moves the session to Failed; every later step
// returns ErrSessionFailed wrapping the original cause.
//
// Sessions are independent. Each owns its catalog cache, so interleaved
// sessions for different players never share option-derived tables.
package world
