package xim

import "github.com/netrack/xim/wire"

// RequestBody is implemented by every generated per-opcode body type
// (xim_gen.go).
type RequestBody interface {
	wire.Format
}

// Request is the wire envelope every XIM message shares: a (major,
// minor) opcode pair tagging which concrete body follows (§4.1). The
// pair plus Body's concrete Go type are the tagged union spec.md
// describes; readRequestBody (xim_gen.go, generated) is the switch
// that recovers Body from the major opcode — it is the generator's
// output, not hand-maintained here. The minor opcode is carried but
// not used to select the body.
type Request struct {
	Major uint8
	Minor uint8
	Body  RequestBody
}

// ReadRequest decodes one Request from r. An unknown major opcode
// produces a ReadError naming "Opcode" and the (major, minor) pair;
// the minor opcode is not checked, so a known major with any minor is
// accepted.
//
// body_words carries the padded body length in 4-byte words; the
// codec pads the body exactly once, at this outer envelope, rather
// than scattering alignment through every nested variable-length
// field (ByteString, AttributeList, ...), which stay tightly packed.
// After decoding the body's declared fields, whatever bytes remain up
// to body_words*4 are trailing padding and are skipped.
func ReadRequest(r *wire.Reader) (*Request, error) {
	major, err := r.U8()
	if err != nil {
		return nil, err
	}

	minor, err := r.U8()
	if err != nil {
		return nil, err
	}

	bodyWords, err := r.U16()
	if err != nil {
		return nil, err
	}

	before := r.Consumed()

	body, err := readRequestBody(major, minor, r)
	if err != nil {
		return nil, err
	}

	consumed := r.Consumed() - before
	padded := int(bodyWords) * 4
	if consumed > padded {
		return nil, r.InvalidData("BodyLength", padded)
	}

	if err := r.Skip(padded - consumed); err != nil {
		return nil, err
	}

	return &Request{Major: major, Minor: minor, Body: body}, nil
}

// Write implements wire.Format.
func (req *Request) Write(w *wire.Writer) {
	bodySize := req.Body.Size()
	pad := wire.PadLen(bodySize)

	w.U8(req.Major)
	w.U8(req.Minor)
	w.U16(uint16((bodySize + pad) / 4))
	req.Body.Write(w)
	w.Pad(pad)
}

// Size implements wire.Format.
func (req *Request) Size() int {
	bodySize := req.Body.Size()
	return 4 + bodySize + wire.PadLen(bodySize)
}
