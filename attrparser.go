package xim

import (
	"io"

	"github.com/netrack/xim/wire"
)

// Attribute ids in the fixed IC attribute schedule (§4.3). These are
// server-assigned conventions advertised in OpenReply (§6.3), not
// schema-generated enum values — a client is free to ignore any id it
// doesn't recognize, which is the point of the schedule being a plain
// lookup table rather than a closed enum.
const (
	icAttrInputStyle   uint16 = 0
	icAttrClientWin    uint16 = 1
	icAttrFocusWin     uint16 = 2
	icAttrPreeditAttrs uint16 = 3
	icAttrSpotLocation uint16 = 4
	icAttrNestedSep    uint16 = 30
)

// setICAttrs interprets a decoded attribute list against the fixed
// schedule in §4.3, updating ic in place. Unknown ids are silently
// ignored; a malformed payload for a known id leaves the prior value
// of that field unchanged and does not abort the rest of the list
// (§4.3, §7). Grounded on connection.rs's set_ic_attrs, including its
// one-level-deep recursion into PREEDITATTRS implemented as a raw
// byte-slice scan rather than a second pass over decoded Attribute
// values (SPEC_FULL.md §4). Attribute value payloads carry no byte
// order of their own; like every other multi-byte field on the wire
// they are encoded in the connection's negotiated order (§4.1, §6.4),
// hence the explicit order parameter rather than a fixed choice.
func setICAttrs[T any](ic *InputContext[T], attrs []wire.Attribute, order wire.ByteOrder) {
	for _, attr := range attrs {
		switch attr.ID {
		case icAttrInputStyle:
			var style InputStyle
			if readExact(attr.Value, &style, order) {
				ic.InputStyle = style
			}

		case icAttrClientWin:
			var win wireU32
			if readExact(attr.Value, &win, order) && win != 0 {
				ic.AppWin = uint32(win)
			}

		case icAttrFocusWin:
			var win wireU32
			if readExact(attr.Value, &win, order) && win != 0 {
				ic.AppFocusWin = uint32(win)
			}

		case icAttrPreeditAttrs:
			setPreeditAttrs(ic, attr.Value, order)

		default:
			// Unknown or top-level SPOTLOCATION/NESTED_SEP: ignored.
		}
	}
}

// setPreeditAttrs scans the raw bytes of a nested PREEDITATTRS payload
// for a SPOTLOCATION entry, one level deep. Nested lists within this
// nested list are not followed (§4.3: "Recursion is one level deep").
func setPreeditAttrs[T any](ic *InputContext[T], body []byte, order wire.ByteOrder) {
	r := wire.NewReader(&byteReader{body}, order)

	for {
		var attr wire.Attribute
		if err := attr.Read(r); err != nil {
			// Malformed or exhausted payload: stop, keep prior state.
			return
		}

		if attr.ID == icAttrSpotLocation {
			var spot wire.Point
			if readExact(attr.Value, &spot, order) {
				ic.PreeditSpot = spot
			}
		}
	}
}

// wireU32 adapts a bare uint32 to wire.Format so readExact can decode
// CLIENTWIN/FOCUSWIN payloads without a dedicated named type.
type wireU32 uint32

func (v *wireU32) Read(r *wire.Reader) error {
	n, err := r.U32()
	if err != nil {
		return err
	}
	*v = wireU32(n)
	return nil
}

// readExact decodes v from the entirety of b using order, the
// connection's negotiated byte order. Returns false if decoding fails
// or leaves bytes of b unread, so the caller can skip the assignment.
func readExact(b []byte, v interface {
	Read(*wire.Reader) error
}, order wire.ByteOrder) bool {
	br := &byteReader{b}
	r := wire.NewReader(br, order)
	return v.Read(r) == nil && len(br.b) == 0
}

// byteReader is a minimal io.Reader over a fixed byte slice, used so
// attribute value payloads can be re-read through the same wire.Reader
// machinery as top-level requests.
type byteReader struct {
	b []byte
}

func (r *byteReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}
