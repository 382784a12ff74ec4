package world

import (
	"errors"
	"fmt"
	"strconv"
)

// Phase is the position of a Session in its lifecycle.
type Phase uint8

// Session phases, in order. Failed is terminal and reachable from any
// phase before Done.
const (
	Unconfigured Phase = iota
	OptionsResolved
	CataloguesBuilt
	GraphBuilt
	PoolPruned
	VictoryLocked
	Done
	Failed
)

var phaseNames = [...]string{
	"unconfigured", "options-resolved", "catalogues-built", "graph-built",
	"pool-pruned", "victory-locked", "done", "failed",
}

// String returns the lower-case name of p.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}

	return "Phase(" + strconv.Itoa(int(p)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}

	return fmt.Errorf("world: unknown phase %q", b)
}

var (
	// ErrPhase indicates a step called in the wrong phase.
	ErrPhase = errors.New("world: step out of order")

	// ErrSessionFailed indicates a step called after an earlier one failed.
	ErrSessionFailed = errors.New("world: session failed")
)
