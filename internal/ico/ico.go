// Package ico wraps a PNG payload in the Windows icon container format.
package ico

import "encoding/binary"

const (
	headerSize = 6  // ICONDIR: reserved, type, count
	entrySize  = 16 // one ICONDIRENTRY

	// PayloadOffset is where the embedded PNG starts in the file.
	PayloadOffset = headerSize + entrySize
)

// Pack builds a single-image ICO around png, which must hold a 256×256
// image. The directory entry encodes 256 as a zero width/height byte per
// the format, with 1 color plane and 32 bits per pixel.
func Pack(png []byte) []byte {
	out := make([]byte, PayloadOffset, PayloadOffset+len(png))

	// ICONDIR: reserved=0, type=1 (icon), count=1.
	binary.LittleEndian.PutUint16(out[2:4], 1)
	binary.LittleEndian.PutUint16(out[4:6], 1)

	// ICONDIRENTRY. Width/height bytes stay 0 (means 256), as do the
	// color count and reserved bytes.
	binary.LittleEndian.PutUint16(out[10:12], 1)  // color planes
	binary.LittleEndian.PutUint16(out[12:14], 32) // bit count
	binary.LittleEndian.PutUint32(out[14:18], uint32(len(png)))
	binary.LittleEndian.PutUint32(out[18:22], PayloadOffset)

	return append(out, png...)
}
