// Package icns builds Apple icon family containers from PNG payloads.
//
// The family holds the seven PNG-capable members from 16×16 through
// 1024×1024. Readers locate members by type code, but the writer keeps a
// fixed emission order so output bytes are reproducible.
package icns

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Entry associates an icon family type code with its square pixel size.
type Entry struct {
	Type string
	Size int
}

// Entries lists the required family members in canonical emission order.
var Entries = []Entry{
	{"icp4", 16},
	{"icp5", 32},
	{"icp6", 64},
	{"ic07", 128},
	{"ic08", 256},
	{"ic09", 512},
	{"ic10", 1024},
}

// Pack concatenates the PNG payloads into an icns file. pngs must contain
// exactly the type codes in Entries; anything missing or extra is an
// error. Each member is framed as type code, big-endian length covering
// the 8-byte frame header plus payload, then the raw PNG.
func Pack(pngs map[string][]byte) ([]byte, error) {
	if len(pngs) != len(Entries) {
		return nil, fmt.Errorf("icns: got %d entries, want %d", len(pngs), len(Entries))
	}

	var body bytes.Buffer
	for _, e := range Entries {
		png, ok := pngs[e.Type]
		if !ok {
			return nil, fmt.Errorf("icns: missing entry %q", e.Type)
		}
		if len(png) == 0 {
			return nil, fmt.Errorf("icns: empty payload for %q", e.Type)
		}
		body.WriteString(e.Type)
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(8+len(png)))
		body.Write(n[:])
		body.Write(png)
	}

	out := make([]byte, 0, 8+body.Len())
	out = append(out, "icns"...)
	var total [4]byte
	binary.BigEndian.PutUint32(total[:], uint32(8+body.Len()))
	out = append(out, total[:]...)
	return append(out, body.Bytes()...), nil
}
