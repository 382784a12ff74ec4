package dataset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LevelSpec describes one level of the topology.
type LevelSpec struct {
	Level int    `yaml:"level"`
	Name  string `yaml:"name"`
	Sides int    `yaml:"sides"`
}

// Topology is the data-driven level table: which levels exist, how many
// sides each has, which level holds the victory gate and which level
// carries the fixed crystal-heart gates.
type Topology struct {
	VictoryLevel   int         `yaml:"victory_level"`
	HeartGateLevel int         `yaml:"heart_gate_level"`
	Levels         []LevelSpec `yaml:"levels"`
}

// LoadTopology decodes and validates a YAML topology.
func LoadTopology(r io.Reader) (Topology, error) {
	var t Topology
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Topology{}, fmt.Errorf("dataset: LoadTopology: %w: %v", ErrBadTopology, err)
	}
	if err := t.Validate(); err != nil {
		return Topology{}, err
	}

	return t, nil
}

// Validate checks that levels are strictly increasing, side counts are in
// 1..MaxSides, and that the victory and heart-gate levels exist.
func (t Topology) Validate() error {
	if len(t.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrBadTopology)
	}
	prev := 0
	for _, l := range t.Levels {
		if l.Level <= prev {
			return fmt.Errorf("%w: level %d out of order", ErrBadTopology, l.Level)
		}
		if l.Sides < 1 || l.Sides > MaxSides {
			return fmt.Errorf("%w: level %d has %d sides", ErrBadTopology, l.Level, l.Sides)
		}
		prev = l.Level
	}
	if t.SideCount(t.VictoryLevel) == 0 {
		return fmt.Errorf("%w: victory level %d not in table", ErrBadTopology, t.VictoryLevel)
	}
	if t.HeartGateLevel != 0 && t.SideCount(t.HeartGateLevel) == 0 {
		return fmt.Errorf("%w: heart gate level %d not in table", ErrBadTopology, t.HeartGateLevel)
	}

	return nil
}

// SideCount returns the number of sides of level, or 0 if level is absent.
func (t Topology) SideCount(level int) int {
	for _, l := range t.Levels {
		if l.Level == level {
			return l.Sides
		}
	}

	return 0
}

// HasSide reports whether (level, side) names a region of the topology.
func (t Topology) HasSide(level, side int) bool {
	return side >= 0 && side < t.SideCount(level)
}

// Previous returns the level preceding level in table order, or 0 when
// level is the first one or absent.
func (t Topology) Previous(level int) int {
	for i, l := range t.Levels {
		if l.Level == level {
			if i == 0 {
				return 0
			}
			return t.Levels[i-1].Level
		}
	}

	return 0
}

// First returns the first level of the table.
func (t Topology) First() int {
	if len(t.Levels) == 0 {
		return 0
	}

	return t.Levels[0].Level
}
