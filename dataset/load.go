package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// LoadCSV reads rows from a CSV stream whose header names at least the
// columns in Columns, in any order. Extra columns are ignored. A stream
// with a header and no rows is malformed.
func LoadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset: LoadCSV: %w: empty input", ErrMissingColumn)
		}
		return nil, fmt.Errorf("dataset: LoadCSV: read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset: LoadCSV: %w: %q", ErrMissingColumn, col)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: LoadCSV: line %d: %w: %v", line, ErrMalformedRow, err)
		}
		row, err := parseRow(func(col string) (string, bool) {
			i := index[col]
			if i >= len(rec) {
				return "", false
			}
			return rec[i], true
		})
		if err != nil {
			return nil, fmt.Errorf("dataset: LoadCSV: line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: LoadCSV: %w: no rows", ErrMalformedRow)
	}

	if err = checkUnique(rows); err != nil {
		return nil, fmt.Errorf("dataset: LoadCSV: %w", err)
	}

	return rows, nil
}

// jsonRecord mirrors one element of a records-oriented JSON export.
// Pointers distinguish an absent key from a zero value.
type jsonRecord struct {
	Name  *string      `json:"name"`
	ID    *json.Number `json:"id"`
	Type  *string      `json:"type"`
	Level *json.Number `json:"level"`
	Side  *json.Number `json:"side"`
}

// LoadJSON reads rows from a JSON array of objects keyed by the columns in
// Columns.
func LoadJSON(r io.Reader) ([]Row, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []jsonRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("dataset: LoadJSON: %w: %v", ErrMalformedRow, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: LoadJSON: %w: no rows", ErrMalformedRow)
	}

	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row, err := parseRow(rec.field)
		if err != nil {
			return nil, fmt.Errorf("dataset: LoadJSON: record %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	if err := checkUnique(rows); err != nil {
		return nil, fmt.Errorf("dataset: LoadJSON: %w", err)
	}

	return rows, nil
}

func (rec jsonRecord) field(col string) (string, bool) {
	switch col {
	case "name":
		if rec.Name != nil {
			return *rec.Name, true
		}
	case "type":
		if rec.Type != nil {
			return *rec.Type, true
		}
	case "id":
		if rec.ID != nil {
			return rec.ID.String(), true
		}
	case "level":
		if rec.Level != nil {
			return rec.Level.String(), true
		}
	case "side":
		if rec.Side != nil {
			return rec.Side.String(), true
		}
	}

	return "", false
}

// parseRow builds a Row from a column accessor shared by both formats.
func parseRow(get func(col string) (string, bool)) (Row, error) {
	vals := make(map[string]string, len(Columns))
	for _, col := range Columns {
		v, ok := get(col)
		if !ok {
			return Row{}, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
		vals[col] = strings.TrimSpace(v)
	}

	if vals["name"] == "" {
		return Row{}, fmt.Errorf("%w: empty name", ErrMalformedRow)
	}
	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil || id < 0 {
		return Row{}, fmt.Errorf("%w: %q: bad id %q", ErrMalformedRow, vals["name"], vals["id"])
	}
	cat, err := ParseCategory(vals["type"])
	if err != nil {
		return Row{}, fmt.Errorf("%q: %w", vals["name"], err)
	}
	level, err := strconv.Atoi(vals["level"])
	if err != nil || level < 1 {
		return Row{}, fmt.Errorf("%w: %q: bad level %q", ErrMalformedRow, vals["name"], vals["level"])
	}
	side, err := strconv.Atoi(vals["side"])
	if err != nil || side < 0 || side >= MaxSides {
		return Row{}, fmt.Errorf("%w: %q: bad side %q", ErrMalformedRow, vals["name"], vals["side"])
	}

	return Row{Name: vals["name"], ID: id, Category: cat, Level: level, Side: side}, nil
}

// checkUnique rejects repeated names and ids.
func checkUnique(rows []Row) error {
	names := mapset.New[string]()
	ids := mapset.New[int64]()
	for _, row := range rows {
		if names.Has(row.Name) {
			return fmt.Errorf("%w: name %q", ErrDuplicate, row.Name)
		}
		if ids.Has(row.ID) {
			return fmt.Errorf("%w: id %d (%q)", ErrDuplicate, row.ID, row.Name)
		}
		names.Put(row.Name)
		ids.Put(row.ID)
	}

	return nil
}
