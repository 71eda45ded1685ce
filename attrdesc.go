package xim

import "github.com/netrack/xim/wire"

// Attr describes one IM or IC attribute that the server advertises to
// the client in an OpenReply (§6.3) — distinct from Attribute
// (wire.Attribute), which carries a concrete id/value pair the client
// sends back. Attr's Name and Type fields are schema-generated enums
// (xim_gen.go); Attr itself is a plain composite the way wire.Point is,
// so it is hand-written rather than emitted by the generator.
type Attr struct {
	ID   uint16
	Name AttributeName
	Type AttrType
}

// Read implements wire.Format.
func (a *Attr) Read(r *wire.Reader) error {
	id, err := r.U16()
	if err != nil {
		return err
	}

	var name AttributeName
	if err := name.Read(r); err != nil {
		return err
	}

	var ty AttrType
	if err := ty.Read(r); err != nil {
		return err
	}

	a.ID, a.Name, a.Type = id, name, ty
	return nil
}

// Write implements wire.Format.
func (a Attr) Write(w *wire.Writer) {
	w.U16(a.ID)
	a.Name.Write(w)
	a.Type.Write(w)
}

// Size implements wire.Format.
func (a Attr) Size() int {
	return 2 + a.Name.Size() + a.Type.Size()
}

// AttrList is a u16-counted list of Attr, used for OpenReply's
// im_attrs and ic_attrs bodies.
type AttrList []Attr

// Read implements wire.Format.
func (l *AttrList) Read(r *wire.Reader) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	out := make([]Attr, 0, n)
	for i := uint16(0); i < n; i++ {
		var a Attr
		if err := a.Read(r); err != nil {
			return err
		}
		out = append(out, a)
	}

	*l = out
	return nil
}

// Write implements wire.Format.
func (l AttrList) Write(w *wire.Writer) {
	w.U16(uint16(len(l)))
	for _, a := range l {
		a.Write(w)
	}
}

// Size implements wire.Format.
func (l AttrList) Size() int {
	n := 2
	for _, a := range l {
		n += a.Size()
	}
	return n
}
