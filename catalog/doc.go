// Package catalog builds the item and location catalogs of one generation
// session from dataset rows and a resolved option Config.
//
// Every dataset row is both an item (what the player collects) and a
// location (where it is found); the two share a name. Rows at or above the
// topology's victory level carry no external identifier and become event
// entries.
//
// Items are values and are copied freely. Locations are pointers: each is
// owned by exactly one region once attached and may receive one locked
// item during pre-fill.
//
// Errors:
//
//	ErrUnknownItem      - name not in the item catalog.
//	ErrUnknownLocation  - name not in the location catalog.
//	ErrAlreadyOwned     - location already attached to a region.
//	ErrAlreadyPlaced    - location already holds a locked item.
//	ErrForeignSession   - cache consulted with another session's key.
package catalog

import "errors"

// Sentinel errors for catalog lookups and mutation.
var (
	ErrUnknownItem     = errors.New("catalog: unknown item")
	ErrUnknownLocation = errors.New("catalog: unknown location")
	ErrAlreadyOwned    = errors.New("catalog: location already owned by a region")
	ErrAlreadyPlaced   = errors.New("catalog: location already holds an item")
	ErrForeignSession  = errors.New("catalog: cache belongs to another session")
)
