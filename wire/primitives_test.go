package wire

import (
	"bytes"
	"testing"
)

func roundTrip(t *testing.T, name string, v interface {
	Write(w *Writer)
	Size() int
}, read func(r *Reader) error) {
	t.Helper()

	w := NewWriter(BigEndian)
	v.Write(w)
	if got, want := len(w.Bytes()), v.Size(); got != want {
		t.Fatalf("%s: Write produced %d bytes, Size() reported %d", name, got, want)
	}

	r := NewReader(bytes.NewReader(w.Bytes()), BigEndian)
	if err := read(r); err != nil {
		t.Fatalf("%s: read back: %v", name, err)
	}
	if r.Consumed() != len(w.Bytes()) {
		t.Fatalf("%s: consumed %d bytes, wrote %d", name, r.Consumed(), len(w.Bytes()))
	}
}

func TestByteStringRoundTrip(t *testing.T) {
	orig := ByteString("en_US.UTF-8")
	var got ByteString
	roundTrip(t, "ByteString", orig, func(r *Reader) error { return got.Read(r) })
	if string(got) != string(orig) {
		t.Fatalf("got %q, want %q", got, orig)
	}
}

func TestEmptyByteStringRoundTrip(t *testing.T) {
	orig := ByteString(nil)
	var got ByteString
	roundTrip(t, "ByteString(empty)", orig, func(r *Reader) error { return got.Read(r) })
	if len(got) != 0 {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestAttributeRoundTrip(t *testing.T) {
	orig := Attribute{ID: 7, Value: ByteString{0x01, 0x02, 0x03}}
	var got Attribute
	roundTrip(t, "Attribute", orig, func(r *Reader) error { return got.Read(r) })
	if got.ID != orig.ID || !bytes.Equal(got.Value, orig.Value) {
		t.Fatalf("got %+v, want %+v", got, orig)
	}
}

func TestAttributeListRoundTrip(t *testing.T) {
	orig := AttributeList{
		{ID: 1, Value: ByteString{0xAA}},
		{ID: 2, Value: ByteString{}},
		{ID: 3, Value: ByteString{0x01, 0x02, 0x03, 0x04, 0x05}},
	}
	var got AttributeList
	roundTrip(t, "AttributeList", orig, func(r *Reader) error { return got.Read(r) })
	if len(got) != len(orig) {
		t.Fatalf("got %d entries, want %d", len(got), len(orig))
	}
	for i := range orig {
		if got[i].ID != orig[i].ID || !bytes.Equal(got[i].Value, orig[i].Value) {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], orig[i])
		}
	}
}

func TestPointRoundTrip(t *testing.T) {
	orig := Point{X: -5, Y: 42}
	var got Point
	roundTrip(t, "Point", orig, func(r *Reader) error { return got.Read(r) })
	if got != orig {
		t.Fatalf("got %+v, want %+v", got, orig)
	}
}

func TestU16ListRoundTrip(t *testing.T) {
	orig := U16List{1, 2, 3, 0xFFFF}
	var got U16List
	roundTrip(t, "U16List", orig, func(r *Reader) error { return got.Read(r) })
	if len(got) != len(orig) {
		t.Fatalf("got %v, want %v", got, orig)
	}
	for i := range orig {
		if got[i] != orig[i] {
			t.Fatalf("got %v, want %v", got, orig)
		}
	}
}
