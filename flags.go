package xim

import "github.com/netrack/xim/wire"

// InputStyle is the bitmask of preedit/status presentation styles an
// input context negotiates (§3). Unlike the generated enums (AttrType,
// AttributeName, ErrorCode), InputStyle accepts any combination of its
// bits, so it is hand-written rather than schema-generated the way
// OpenFlow's PortFeature bitmask in the teacher is hand-written rather
// than derived from a closed variant table.
type InputStyle uint32

const (
	StylePreeditArea      InputStyle = 1 << 0
	StylePreeditCallbacks InputStyle = 1 << 1
	StylePreeditPosition  InputStyle = 1 << 2
	StylePreeditNothing   InputStyle = 1 << 3
	StylePreeditNone      InputStyle = 1 << 4

	StyleStatusArea     InputStyle = 1 << 8
	StyleStatusCallback InputStyle = 1 << 9
	StyleStatusNone     InputStyle = 1 << 10
	StyleStatusNothing  InputStyle = 1 << 11
)

// Read implements wire.Format.
func (s *InputStyle) Read(r *wire.Reader) error {
	v, err := r.U32()
	if err != nil {
		return err
	}
	*s = InputStyle(v)
	return nil
}

// Write implements wire.Format.
func (s InputStyle) Write(w *wire.Writer) {
	w.U32(uint32(s))
}

// Size implements wire.Format.
func (InputStyle) Size() int {
	return 4
}

// InputStyleList is a u16-counted, unpadded list of InputStyle
// values, used to report the styles a handler advertises in reply to
// GetImValues id 0 (§4.4).
type InputStyleList struct {
	Styles []InputStyle
}

// Read implements wire.Format.
func (l *InputStyleList) Read(r *wire.Reader) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	out := make([]InputStyle, 0, n)
	for i := uint16(0); i < n; i++ {
		var s InputStyle
		if err := s.Read(r); err != nil {
			return err
		}
		out = append(out, s)
	}

	l.Styles = out
	return nil
}

// Write implements wire.Format.
func (l InputStyleList) Write(w *wire.Writer) {
	w.U16(uint16(len(l.Styles)))
	for _, s := range l.Styles {
		s.Write(w)
	}
}

// Size implements wire.Format.
func (l InputStyleList) Size() int {
	return 2 + 4*len(l.Styles)
}

// ForwardEventFlag is the bitmask carried by ForwardEvent (§4.4).
type ForwardEventFlag uint16

const (
	// ForwardEventSynchronous asks the core to reply with a SyncReply
	// once the event has been processed (§4.4, §8 property 7).
	ForwardEventSynchronous ForwardEventFlag = 1 << 0
	// ForwardEventRequestFiltering marks events the client wants
	// filtered through the input method before ordinary delivery.
	ForwardEventRequestFiltering ForwardEventFlag = 1 << 1
)

// Read implements wire.Format.
func (f *ForwardEventFlag) Read(r *wire.Reader) error {
	v, err := r.U16()
	if err != nil {
		return err
	}
	*f = ForwardEventFlag(v)
	return nil
}

// Write implements wire.Format.
func (f ForwardEventFlag) Write(w *wire.Writer) {
	w.U16(uint16(f))
}

// Size implements wire.Format.
func (ForwardEventFlag) Size() int {
	return 2
}

// Contains reports whether f has all bits of other set.
func (f ForwardEventFlag) Contains(other ForwardEventFlag) bool {
	return f&other == other
}

// ErrorFlag marks which of input_method_id/input_context_id are
// meaningful on an Error request (§4.4, S3).
type ErrorFlag uint16

const (
	ErrorFlagInputMethodIDValid  ErrorFlag = 1 << 0
	ErrorFlagInputContextIDValid ErrorFlag = 1 << 1
)

// Read implements wire.Format.
func (f *ErrorFlag) Read(r *wire.Reader) error {
	v, err := r.U16()
	if err != nil {
		return err
	}
	*f = ErrorFlag(v)
	return nil
}

// Write implements wire.Format.
func (f ErrorFlag) Write(w *wire.Writer) {
	w.U16(uint16(f))
}

// Size implements wire.Format.
func (ErrorFlag) Size() int {
	return 2
}
