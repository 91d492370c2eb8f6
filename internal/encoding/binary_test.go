package encoding

import (
	"errors"
	"strings"
	"testing"
)

func TestMerge8Split16(t *testing.T) {
	v := Merge8(3, 250)
	if v != 3<<8+250 {
		t.Fatalf("expected %d, got %d", 3<<8+250, v)
	}
	a, b := Split16(v)
	if a != 3 || b != 250 {
		t.Errorf("expected (3,250), got (%d,%d)", a, b)
	}
}

func TestWriterReader(t *testing.T) {
	w := &Writer{}
	w.Uint16(50)
	w.Uint8(7)
	if err := w.String("office"); err != nil {
		t.Fatal(err)
	}
	w.Uint16(65535)

	r := NewReader(w.Bytes())
	if got := r.Uint16(); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
	if got := r.Uint8(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := r.String(); got != "office" {
		t.Errorf("expected office, got %q", got)
	}
	if got := r.Uint16(); got != 65535 {
		t.Errorf("expected 65535, got %d", got)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error %v", r.Err())
	}
	if r.Remaining() != 0 {
		t.Errorf("expected no remaining bytes, got %d", r.Remaining())
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01})
	r.Uint16()
	if !errors.Is(r.Err(), ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", r.Err())
	}
	// sticky: later reads don't clear it
	r.Uint8()
	if !errors.Is(r.Err(), ErrShortBuffer) {
		t.Fatalf("expected error to stick, got %v", r.Err())
	}
}

func TestWriterStringTooLong(t *testing.T) {
	w := &Writer{}
	if err := w.String(strings.Repeat("x", 256)); err == nil {
		t.Fatal("expected error for 256 byte string")
	}
}
