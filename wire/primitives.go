package wire

// ByteString is a length-prefixed byte string: a u16 length followed
// by that many bytes (§3). Unlike the outer Request envelope, a bare
// ByteString carries no padding of its own — alignment to a 4-byte
// boundary is the concern of whatever frames it (the Request envelope
// pads the whole body once, §4.1), not of every nested variable-length
// value independently.
type ByteString []byte

// Read implements Format.
func (s *ByteString) Read(r *Reader) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	b, err := r.Bytes(int(n))
	if err != nil {
		return err
	}

	*s = b
	return nil
}

// Write implements Format.
func (s ByteString) Write(w *Writer) {
	w.U16(uint16(len(s)))
	w.RawBytes(s)
}

// Size implements Format.
func (s ByteString) Size() int {
	return 2 + len(s)
}

// ByteStringList is a u16-counted list of ByteStrings, used for
// EncodingNegotiation's candidate encoding names.
type ByteStringList []ByteString

// Read implements Format.
func (l *ByteStringList) Read(r *Reader) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	out := make([]ByteString, 0, n)
	for i := uint16(0); i < n; i++ {
		var s ByteString
		if err := s.Read(r); err != nil {
			return err
		}
		out = append(out, s)
	}

	*l = out
	return nil
}

// Write implements Format.
func (l ByteStringList) Write(w *Writer) {
	w.U16(uint16(len(l)))
	for _, s := range l {
		s.Write(w)
	}
}

// Size implements Format.
func (l ByteStringList) Size() int {
	n := 2
	for _, s := range l {
		n += s.Size()
	}
	return n
}

// Point is a preedit spot location: two signed 16-bit coordinates
// (§3).
type Point struct {
	X, Y int16
}

// Read implements Format.
func (p *Point) Read(r *Reader) error {
	x, err := r.I16()
	if err != nil {
		return err
	}
	y, err := r.I16()
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

// Write implements Format.
func (p Point) Write(w *Writer) {
	w.I16(p.X)
	w.I16(p.Y)
}

// Size implements Format.
func (Point) Size() int {
	return 4
}

// Attribute is a self-describing {id, value} pair (§4.1). The value
// is a ByteString whose contents are re-parsed as whatever type the
// attribute id (§4.3) says it should be; Attribute itself does not
// know that mapping.
type Attribute struct {
	ID    uint16
	Value ByteString
}

// Read implements Format.
func (a *Attribute) Read(r *Reader) error {
	id, err := r.U16()
	if err != nil {
		return err
	}

	var v ByteString
	if err := v.Read(r); err != nil {
		return err
	}

	a.ID, a.Value = id, v
	return nil
}

// Write implements Format.
func (a Attribute) Write(w *Writer) {
	w.U16(a.ID)
	a.Value.Write(w)
}

// Size implements Format.
func (a Attribute) Size() int {
	return 2 + a.Value.Size()
}

// AttributeList is a u16-counted list of Attribute, used for
// CreateIc/SetIcValues bodies. The bytes inside a nested PREEDITATTRS
// attribute are bare Attribute entries with no count prefix and are
// not read through this type.
type AttributeList []Attribute

// Read implements Format.
func (l *AttributeList) Read(r *Reader) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	out := make([]Attribute, 0, n)
	for i := uint16(0); i < n; i++ {
		var a Attribute
		if err := a.Read(r); err != nil {
			return err
		}
		out = append(out, a)
	}

	*l = out
	return nil
}

// Write implements Format.
func (l AttributeList) Write(w *Writer) {
	w.U16(uint16(len(l)))
	for _, a := range l {
		a.Write(w)
	}
}

// Size implements Format.
func (l AttributeList) Size() int {
	n := 2
	for _, a := range l {
		n += a.Size()
	}
	return n
}

// U16List is a u16-counted list of u16 values, used for GetImValues'
// and QueryExtension's id lists.
type U16List []uint16

// Read implements Format.
func (l *U16List) Read(r *Reader) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	out := make([]uint16, 0, n)
	for i := uint16(0); i < n; i++ {
		v, err := r.U16()
		if err != nil {
			return err
		}
		out = append(out, v)
	}

	*l = out
	return nil
}

// Write implements Format.
func (l U16List) Write(w *Writer) {
	w.U16(uint16(len(l)))
	for _, v := range l {
		w.U16(v)
	}
}

// Size implements Format.
func (l U16List) Size() int {
	return 2 + 2*len(l)
}
