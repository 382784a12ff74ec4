package dataset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum returns a stable 64-bit digest of the rows and the topology.
// Two datasets with equal checksums produce identical catalogs.
func (d Dataset) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	putInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	for _, row := range d.Rows {
		_, _ = h.WriteString(row.Name)
		_, _ = h.Write([]byte{0})
		putInt(row.ID)
		putInt(int64(row.Category))
		putInt(int64(row.Level))
		putInt(int64(row.Side))
	}
	putInt(int64(d.Topology.VictoryLevel))
	putInt(int64(d.Topology.HeartGateLevel))
	for _, l := range d.Topology.Levels {
		putInt(int64(l.Level))
		putInt(int64(l.Sides))
	}

	return h.Sum64()
}
