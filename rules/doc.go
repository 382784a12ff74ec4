// Package rules defines access predicates: pure, serialisable boolean
// conditions over a player's collected items.
//
// A Predicate is a tagged value holding only its own parameters:
//
//	Always()                  - no gate
//	HasItem(name, count)      - at least count copies of name
//	HasAny(names...)          - at least one of names
//	HasAll(names...)          - every one of names
//	HasGroup(group, count)    - at least count items from a named group
//	And(terms...)             - every term holds
//
// Predicates never capture a world or a player. They are interpreted by
// Evaluate against an explicitly passed State and player id, so the same
// value can be evaluated any number of times, compared, and printed.
//
// The zero Predicate is Always().
package rules
