// Package options holds the player-chosen settings of one generation
// session and derives the completion level from them.
//
// Options are read once, clamped to their declared ranges at the
// boundary, and handed downstream as a read-only Config value.
package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOption indicates a value outside an option's fixed domain.
var ErrInvalidOption = errors.New("options: invalid option")

// Goal is the victory condition: which chapter the player must finish.
type Goal uint8

// Goals, named after the chapter that ends the game.
const (
	GoalSummit   Goal = iota + 1 // chapter 7, level 7
	GoalCore                     // chapter 8, level 9
	GoalFarewell                 // chapter 9, level 10
)

var goalNames = map[Goal]string{
	GoalSummit:   "summit",
	GoalCore:     "core",
	GoalFarewell: "farewell",
}

var goalLevels = map[Goal]int{
	GoalSummit:   7,
	GoalCore:     9,
	GoalFarewell: 10,
}

// chapter numbers accepted as aliases in player files
var goalChapters = map[int]Goal{7: GoalSummit, 8: GoalCore, 9: GoalFarewell}

// Valid reports whether g is one of the defined goals.
func (g Goal) Valid() bool {
	_, ok := goalNames[g]
	return ok
}

// CompletionLevel maps the goal to the level the player must complete.
// An invalid goal maps to 0.
func (g Goal) CompletionLevel() int { return goalLevels[g] }

// String returns the player-file spelling of g.
func (g Goal) String() string {
	if name, ok := goalNames[g]; ok {
		return name
	}

	return "Goal(" + strconv.Itoa(int(g)) + ")"
}

// ParseGoal accepts a goal name or its chapter number (7, 8 or 9).
func ParseGoal(s string) (Goal, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for g, name := range goalNames {
		if s == name {
			return g, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if g, ok := goalChapters[n]; ok {
			return g, nil
		}
	}

	return 0, fmt.Errorf("%w: goal %q", ErrInvalidOption, s)
}

// MarshalText implements encoding.TextMarshaler.
func (g Goal) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: goal %d", ErrInvalidOption, uint8(g))
	}

	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Goal) UnmarshalText(b []byte) error {
	parsed, err := ParseGoal(string(b))
	if err != nil {
		return err
	}
	*g = parsed

	return nil
}

// UnmarshalYAML accepts both scalar spellings of a goal.
func (g *Goal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: goal must be a scalar (line %d)", ErrInvalidOption, node.Line)
	}

	return g.UnmarshalText([]byte(node.Value))
}

// Options is the typed option record of one player.
type Options struct {
	BerriesRequired   int  `yaml:"berries_required" json:"berries_required"`
	CassettesRequired int  `yaml:"cassettes_required" json:"cassettes_required"`
	HeartsRequired    int  `yaml:"hearts_required" json:"hearts_required"`
	LevelsRequired    int  `yaml:"levels_required" json:"levels_required"`
	Goal              Goal `yaml:"goal" json:"goal"`
}

// Range declares the domain of one integer option.
type Range struct {
	Key         string
	DisplayName string
	Min, Max    int
	Default     int
}

// Ranges lists the integer options in slot-data order.
var Ranges = []Range{
	{Key: "berries_required", DisplayName: "Strawberry Requirement", Min: 0, Max: 175, Default: 0},
	{Key: "cassettes_required", DisplayName: "Cassette Requirement", Min: 0, Max: 8, Default: 0},
	{Key: "hearts_required", DisplayName: "Crystal Heart Requirement", Min: 0, Max: 24, Default: 15},
	{Key: "levels_required", DisplayName: "Level Completion Requirement", Min: 0, Max: 24, Default: 0},
}

// DefaultGoal is the goal used when a player file does not name one.
const DefaultGoal = GoalFarewell

// Defaults returns the option record with every value at its default.
func Defaults() Options {
	var o Options
	for _, r := range Ranges {
		*o.field(r.Key) = r.Default
	}
	o.Goal = DefaultGoal

	return o
}

// Clamp returns o with every integer pulled into its declared range and an
// invalid goal replaced by DefaultGoal.
func (o Options) Clamp() Options {
	for _, r := range Ranges {
		v := o.field(r.Key)
		switch {
		case *v < r.Min:
			*v = r.Min
		case *v > r.Max:
			*v = r.Max
		}
	}
	if !o.Goal.Valid() {
		o.Goal = DefaultGoal
	}

	return o
}

// Values returns the four integer options keyed as in Ranges.
func (o Options) Values() map[string]int {
	out := make(map[string]int, len(Ranges))
	for _, r := range Ranges {
		out[r.Key] = *o.field(r.Key)
	}

	return out
}

func (o *Options) field(key string) *int {
	switch key {
	case "berries_required":
		return &o.BerriesRequired
	case "cassettes_required":
		return &o.CassettesRequired
	case "hearts_required":
		return &o.HeartsRequired
	case "levels_required":
		return &o.LevelsRequired
	}
	panic("options: unknown key " + key)
}

// Config is the resolved, read-only configuration every builder receives
// by value.
type Config struct {
	Options         Options
	CompletionLevel int
}

// Resolve derives the completion level from o. It performs no validation
// beyond the goal's fixed domain.
func Resolve(o Options) (Config, error) {
	if !o.Goal.Valid() {
		return Config{}, fmt.Errorf("%w: goal %d", ErrInvalidOption, uint8(o.Goal))
	}

	return Config{Options: o, CompletionLevel: o.Goal.CompletionLevel()}, nil
}
