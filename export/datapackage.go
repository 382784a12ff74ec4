package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/dataset"
)

// DataPackage is the options-independent description of the game the host
// hands to clients.
type DataPackage struct {
	Game             string              `json:"game"`
	Checksum         string              `json:"checksum"`
	ItemNameToID     map[string]int64    `json:"item_name_to_id"`
	LocationNameToID map[string]int64    `json:"location_name_to_id"`
	Groups           map[string][]string `json:"item_name_groups"`
}

// NewDataPackage builds the data package of d. groups is usually the
// item catalog's Groups.
func NewDataPackage(d dataset.Dataset, groups map[string][]string) DataPackage {
	return DataPackage{
		Game:             catalog.Game,
		Checksum:         strconv.FormatUint(d.Checksum(), 16),
		ItemNameToID:     catalog.ItemNameToID(d.Rows, d.Topology),
		LocationNameToID: catalog.LocationNameToID(d.Rows),
		Groups:           groups,
	}
}

// WriteJSON writes p as indented JSON. Map keys are sorted by
// encoding/json, so equal packages produce equal bytes.
func (p DataPackage) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("export: encode data package: %w", err)
	}

	return nil
}

// ReadDataPackage decodes a package written by WriteJSON.
func ReadDataPackage(r io.Reader) (DataPackage, error) {
	var p DataPackage
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return DataPackage{}, fmt.Errorf("export: decode data package: %w", err)
	}

	return p, nil
}
