// Package wire implements the byte-exact, endian-aware XIM codec
// primitives that the generated request bodies are built out of.
//
// Every value that crosses the wire implements Format: it knows how to
// read itself from a Reader, write itself to a Writer, and report the
// exact number of bytes its own Write produces, padding included. The
// generator (package gen) emits request and enum types against this
// same interface; it does not reimplement the primitives below.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ByteOrder is the endianness negotiated for a connection at Connect
// time (§6.4). The core threads it through every Reader/Writer rather
// than assuming host order, since XIM peers pick their own byte order
// and announce it in the first request.
type ByteOrder = binary.ByteOrder

var (
	BigEndian    ByteOrder = binary.BigEndian
	LittleEndian ByteOrder = binary.LittleEndian
)

// Format is implemented by every primitive and generated type that
// crosses the XIM wire.
type Format interface {
	// Read decodes a value of this type from r, using r's negotiated
	// byte order.
	Read(r *Reader) error
	// Write encodes the value to w.
	Write(w *Writer)
	// Size reports the exact number of bytes Write produces,
	// including any padding.
	Size() int
}

// Reader reads XIM primitives from a byte-oriented source using a
// fixed, negotiated byte order. It tracks the count of bytes consumed
// so callers can re-slice "remaining" buffers the way nested
// attribute lists require (§4.3).
type Reader struct {
	r     io.Reader
	order ByteOrder
	read  int
}

// NewReader creates a Reader over r using the given byte order.
func NewReader(r io.Reader, order ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// Consumed reports the number of bytes read so far.
func (r *Reader) Consumed() int {
	return r.read
}

func (r *Reader) readFull(b []byte) error {
	n, err := io.ReadFull(r.r, b)
	r.read += n
	return err
}

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) {
	var b [1]byte
	if err := r.readFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a 16-bit unsigned integer in the connection's byte order.
func (r *Reader) U16() (uint16, error) {
	var b [2]byte
	if err := r.readFull(b[:]); err != nil {
		return 0, err
	}
	return r.order.Uint16(b[:]), nil
}

// U32 reads a 32-bit unsigned integer in the connection's byte order.
func (r *Reader) U32() (uint32, error) {
	var b [4]byte
	if err := r.readFull(b[:]); err != nil {
		return 0, err
	}
	return r.order.Uint32(b[:]), nil
}

// I16 reads a 16-bit signed integer, used for Point coordinates.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// I32 reads a 32-bit signed integer, used for PreeditCaretReply's
// reported position.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// Skip discards n bytes, used to eat padding.
func (r *Reader) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	return r.readFull(buf)
}

// Bytes reads exactly n raw bytes with no interpretation.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// InvalidData builds the standard malformed-input error (§7), naming
// what field was being decoded and the offending value.
func (r *Reader) InvalidData(what string, detail interface{}) error {
	return &ReadError{What: what, Detail: fmt.Sprintf("%v", detail)}
}

// ReadError reports malformed wire input (§7). The offending request
// is discarded by the caller; it is not a Go-level panic.
type ReadError struct {
	What   string
	Detail string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("xim: invalid %s: %s", e.What, e.Detail)
}

// Writer accumulates the wire encoding of a value using a fixed,
// negotiated byte order.
type Writer struct {
	buf   bytes.Buffer
	order ByteOrder
}

// NewWriter creates a Writer using the given byte order.
func NewWriter(order ByteOrder) *Writer {
	return &Writer{order: order}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// U8 writes a single byte.
func (w *Writer) U8(v uint8) {
	w.buf.WriteByte(v)
}

// U16 writes a 16-bit unsigned integer in the writer's byte order.
func (w *Writer) U16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// U32 writes a 32-bit unsigned integer in the writer's byte order.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// I16 writes a 16-bit signed integer.
func (w *Writer) I16(v int16) {
	w.U16(uint16(v))
}

// I32 writes a 32-bit signed integer.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// Pad writes n zero bytes, used to align variable-length fields to a
// 4-byte boundary (§4.1).
func (w *Writer) Pad(n int) {
	if n <= 0 {
		return
	}
	var zero [4]byte
	w.buf.Write(zero[:n])
}

// RawBytes writes b with no length prefix or padding.
func (w *Writer) RawBytes(b []byte) {
	w.buf.Write(b)
}

// WriteTo implements io.WriterTo so a Writer's accumulated bytes can
// be flushed directly to a transport connection.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}

// PadLen returns the number of padding bytes needed to align n to a
// 4-byte boundary, matching §4.1's "Padding is always to 4-byte
// boundaries after variable-length fields".
func PadLen(n int) int {
	return (4 - n%4) % 4
}
