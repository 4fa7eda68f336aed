package ico

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPack(t *testing.T) {
	payload := []byte("not a real png, length is what matters")
	out := Pack(payload)

	if got, want := len(out), PayloadOffset+len(payload); got != want {
		t.Fatalf("file length: got %d, want %d", got, want)
	}

	if v := binary.LittleEndian.Uint16(out[0:2]); v != 0 {
		t.Errorf("reserved: got %d, want 0", v)
	}
	if v := binary.LittleEndian.Uint16(out[2:4]); v != 1 {
		t.Errorf("resource type: got %d, want 1", v)
	}
	if v := binary.LittleEndian.Uint16(out[4:6]); v != 1 {
		t.Errorf("image count: got %d, want 1", v)
	}

	// Entry: width/height/color-count/reserved bytes all zero.
	for i := 6; i < 10; i++ {
		if out[i] != 0 {
			t.Errorf("entry byte %d: got %d, want 0", i, out[i])
		}
	}
	if v := binary.LittleEndian.Uint16(out[10:12]); v != 1 {
		t.Errorf("color planes: got %d, want 1", v)
	}
	if v := binary.LittleEndian.Uint16(out[12:14]); v != 32 {
		t.Errorf("bit count: got %d, want 32", v)
	}
	if v := binary.LittleEndian.Uint32(out[14:18]); v != uint32(len(payload)) {
		t.Errorf("payload size: got %d, want %d", v, len(payload))
	}
	if v := binary.LittleEndian.Uint32(out[18:22]); v != PayloadOffset {
		t.Errorf("payload offset: got %d, want %d", v, PayloadOffset)
	}

	if !bytes.Equal(out[PayloadOffset:], payload) {
		t.Error("payload bytes differ from input")
	}
}
