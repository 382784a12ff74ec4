package dataset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors for dataset loading.
var (
	// ErrMissingColumn indicates a required column is absent.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrMalformedRow indicates a value that cannot be parsed or is out of range.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrUnknownType indicates an unrecognised type column value.
	ErrUnknownType = errors.New("dataset: unknown type")

	// ErrDuplicate indicates two rows share a name or an id.
	ErrDuplicate = errors.New("dataset: duplicate entry")

	// ErrBadTopology indicates an invalid level topology.
	ErrBadTopology = errors.New("dataset: bad topology")
)

// Columns lists the required columns in canonical order.
var Columns = []string{"name", "id", "type", "level", "side"}

// Category is the collectible kind of a row.
type Category uint8

// Known categories. The zero value is not a valid category.
const (
	Cassette Category = iota + 1
	Completion
	GemHeart
	Strawberry
)

var categoryNames = map[Category]string{
	Cassette:   "Cassette",
	Completion: "Completion",
	GemHeart:   "GemHeart",
	Strawberry: "Strawberry",
}

var categoryByKey = map[string]Category{
	"CASSETTE":   Cassette,
	"COMPLETION": Completion,
	"GEMHEART":   GemHeart,
	"STRAWBERRY": Strawberry,
}

// ParseCategory maps a type column value to a Category, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	// A Caser is stateful, so each call gets its own.
	c, ok := categoryByKey[cases.Upper(language.Und).String(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}

	return c, nil
}

// String returns the display name of c.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Category(%d)", uint8(c))
}

// MarshalText encodes c by its display name.
func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name, case-insensitively.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// MaxSides is the highest number of sides any level may have.
const MaxSides = 3

var sideLetters = [MaxSides]string{"A", "B", "C"}

// SideLetter returns "A", "B" or "C" for side 0, 1 or 2, and "" otherwise.
func SideLetter(side int) string {
	if side < 0 || side >= MaxSides {
		return ""
	}

	return sideLetters[side]
}

// Row is one record of the dataset. Every row is both an item and the
// location where that item is found.
type Row struct {
	Name     string
	ID       int64
	Category Category
	Level    int
	Side     int
}
