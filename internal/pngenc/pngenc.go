// Package pngenc assembles minimal PNG byte streams from raw RGBA
// scanline rows. It writes the chunk framing itself (length, type,
// payload, CRC32) rather than going through an image library, so the
// output layout is fixed: signature, IHDR, one IDAT, IEND.
package pngenc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zlib"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Signature returns the 8-byte PNG file signature.
func Signature() []byte {
	return append([]byte(nil), signature...)
}

// Encode produces a complete PNG for the given dimensions. rows must be
// the scanline buffer produced by the synthesizer: height rows of one
// filter byte plus 4 RGBA bytes per pixel. The image is written as 8-bit
// truecolor with alpha (color type 6), no interlacing, with the scanlines
// zlib-compressed at best compression into a single IDAT chunk.
func Encode(width, height int, rows []byte) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pngenc: invalid dimensions %dx%d", width, height)
	}
	if want := height * (1 + width*4); len(rows) != want {
		return nil, fmt.Errorf("pngenc: scanline buffer is %d bytes, want %d for %dx%d", len(rows), want, width, height)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	// compression, filter and interlace methods stay 0

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("pngenc: %w", err)
	}
	if _, err := zw.Write(rows); err != nil {
		return nil, fmt.Errorf("pngenc: compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("pngenc: compress scanlines: %w", err)
	}

	var out bytes.Buffer
	out.Grow(len(signature) + 12 + len(ihdr) + 12 + idat.Len() + 12)
	out.Write(signature)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", idat.Bytes())
	writeChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}

// writeChunk frames one PNG chunk: big-endian payload length, 4-byte
// type, payload, then CRC32 over type+payload.
func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(data)))
	copy(hdr[4:8], typ)
	out.Write(hdr[:])
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	out.Write(sum[:])
}
