package dataset

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed data/items.csv data/levels.yaml
var embedded embed.FS

// Dataset couples the rows with the topology they refer to.
type Dataset struct {
	Rows     []Row
	Topology Topology
}

// Validate checks every row against the topology.
func (d Dataset) Validate() error {
	if err := d.Topology.Validate(); err != nil {
		return err
	}
	for _, row := range d.Rows {
		if !d.Topology.HasSide(row.Level, row.Side) {
			return fmt.Errorf("%w: %q: level %d side %d not in topology",
				ErrMalformedRow, row.Name, row.Level, row.Side)
		}
	}

	return nil
}

// Get returns the row named name.
func (d Dataset) Get(name string) (Row, bool) {
	for _, row := range d.Rows {
		if row.Name == name {
			return row, true
		}
	}

	return Row{}, false
}

var (
	defaultOnce sync.Once
	defaultSet  Dataset
	defaultErr  error
)

// Default returns the embedded canonical dataset. The rows are decoded once
// per process; callers receive their own copy of the row slice.
func Default() (Dataset, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = loadEmbedded()
	})
	if defaultErr != nil {
		return Dataset{}, defaultErr
	}

	return Dataset{
		Rows:     append([]Row(nil), defaultSet.Rows...),
		Topology: defaultSet.Topology.clone(),
	}, nil
}

func loadEmbedded() (Dataset, error) {
	rawRows, err := embedded.ReadFile("data/items.csv")
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: read embedded rows: %w", err)
	}
	rawTopo, err := embedded.ReadFile("data/levels.yaml")
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: read embedded topology: %w", err)
	}
	rows, err := LoadCSV(bytes.NewReader(rawRows))
	if err != nil {
		return Dataset{}, err
	}
	topo, err := LoadTopology(bytes.NewReader(rawTopo))
	if err != nil {
		return Dataset{}, err
	}
	d := Dataset{Rows: rows, Topology: topo}

	return d, d.Validate()
}

func (t Topology) clone() Topology {
	t.Levels = append([]LevelSpec(nil), t.Levels...)

	return t
}

// LoadFiles reads a dataset from disk. Rows are parsed as JSON when the
// path ends in ".json" and as CSV otherwise. An empty topologyPath selects
// the embedded topology.
func LoadFiles(rowsPath, topologyPath string) (Dataset, error) {
	f, err := os.Open(rowsPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: open rows: %w", err)
	}
	defer f.Close()

	var rows []Row
	if strings.EqualFold(filepath.Ext(rowsPath), ".json") {
		rows, err = LoadJSON(f)
	} else {
		rows, err = LoadCSV(f)
	}
	if err != nil {
		return Dataset{}, err
	}

	var topo Topology
	if topologyPath == "" {
		def, err := Default()
		if err != nil {
			return Dataset{}, err
		}
		topo = def.Topology
	} else {
		tf, err := os.Open(topologyPath)
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset: open topology: %w", err)
		}
		defer tf.Close()
		if topo, err = LoadTopology(tf); err != nil {
			return Dataset{}, err
		}
	}

	d := Dataset{Rows: rows, Topology: topo}
	if err = d.Validate(); err != nil {
		return Dataset{}, err
	}

	return d, nil
}
