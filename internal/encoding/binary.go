package encoding

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ErrShortBuffer is returned by Reader when the data runs out mid value.
var ErrShortBuffer = fmt.Errorf("unexpected end of data")

// Merge8 packs two uint8 into a uint16, a in the high byte.
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}

// Split16 is the inverse of Merge8.
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Writer appends big endian values to an internal buffer.
type Writer struct {
	buf bytes.Buffer
}

// Uint8 writes a single byte
func (w *Writer) Uint8(v uint8) {
	w.buf.WriteByte(v)
}

// Uint16 writes v as two bytes
func (w *Writer) Uint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// String writes a length prefixed (uint8) string. Strings over 255 bytes
// are an error.
func (w *Writer) String(s string) error {
	if len(s) > 255 {
		return fmt.Errorf("string of %d bytes exceeds 255", len(s))
	}
	w.Uint8(uint8(len(s)))
	w.buf.WriteString(s)
	return nil
}

// Bytes returns everything written so far
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Reader reads values written by Writer. The first failure sticks; check Err
// once after reading everything.
type Reader struct {
	data []byte
	err  error
}

// NewReader returns a Reader over data
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.data) < n {
		r.err = ErrShortBuffer
		return nil
	}
	out := r.data[:n]
	r.data = r.data[n:]
	return out
}

// Uint8 reads a single byte
func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Uint16 reads two bytes
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// String reads a length prefixed string
func (r *Reader) String() string {
	n := r.Uint8()
	b := r.take(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.data)
}

// Err returns the first error hit while reading
func (r *Reader) Err() error {
	return r.err
}
