package xim

import (
	"bytes"
	"testing"

	"github.com/netrack/xim/wire"
)

func TestRequestRoundTrip(t *testing.T) {
	req := &Request{
		Major: majorOpen,
		Body:  &OpenBody{Locale: wire.ByteString("ja_JP.UTF-8")},
	}

	w := wire.NewWriter(wire.BigEndian)
	req.Write(w)

	if got, want := len(w.Bytes()), req.Size(); got != want {
		t.Fatalf("Write produced %d bytes, Size() reported %d", got, want)
	}

	r := wire.NewReader(bytes.NewReader(w.Bytes()), wire.BigEndian)
	got, err := ReadRequest(r)
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}

	gotBody, ok := got.Body.(*OpenBody)
	if !ok {
		t.Fatalf("Body has type %T, want *OpenBody", got.Body)
	}
	if string(gotBody.Locale) != "ja_JP.UTF-8" {
		t.Fatalf("Locale = %q, want %q", gotBody.Locale, "ja_JP.UTF-8")
	}
}

// TestRequestSizeIsAlways4ByteAligned exercises several body shapes
// whose raw field sizes are not individually 4-byte multiples
// (variable-length strings of odd length), checking that the
// envelope still rounds every request up to a 4-byte boundary.
func TestRequestSizeIsAlways4ByteAligned(t *testing.T) {
	locales := []string{"", "a", "en", "jp!", "en_US.UTF-8"}

	for _, locale := range locales {
		req := &Request{Major: majorOpen, Body: &OpenBody{Locale: wire.ByteString(locale)}}

		size := req.Size()
		if size%4 != 0 {
			t.Fatalf("locale %q: Request.Size() = %d, not a multiple of 4", locale, size)
		}

		w := wire.NewWriter(wire.BigEndian)
		req.Write(w)
		if len(w.Bytes()) != size {
			t.Fatalf("locale %q: wrote %d bytes, Size() reported %d", locale, len(w.Bytes()), size)
		}
		if len(w.Bytes())%4 != 0 {
			t.Fatalf("locale %q: wrote %d bytes, not a multiple of 4", locale, len(w.Bytes()))
		}
	}
}

func TestReadRequestUnknownOpcode(t *testing.T) {
	w := wire.NewWriter(wire.BigEndian)
	w.U8(0xFE)
	w.U8(0)
	w.U16(0)

	r := wire.NewReader(bytes.NewReader(w.Bytes()), wire.BigEndian)
	if _, err := ReadRequest(r); err == nil {
		t.Fatal("ReadRequest with an unknown opcode: want error, got nil")
	}
}

func TestConnectBodyByteOrderByte(t *testing.T) {
	body := &ConnectBody{
		ByteOrder:                  'l',
		ClientMajorProtocolVersion: 1,
		ClientMinorProtocolVersion: 0,
	}

	w := wire.NewWriter(wire.BigEndian)
	body.Write(w)

	var got ConnectBody
	r := wire.NewReader(bytes.NewReader(w.Bytes()), wire.BigEndian)
	if err := got.Read(r); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ByteOrder != 'l' {
		t.Fatalf("ByteOrder = %q, want 'l'", got.ByteOrder)
	}
}
