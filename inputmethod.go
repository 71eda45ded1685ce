package xim

// InputMethod owns a locale and the set of input contexts created
// under it (§3). All contexts it creates inherit its locale at
// creation time; its id is stamped into every child IC's
// InputMethodID.
type InputMethod[T any] struct {
	id     uint16
	locale []byte
	ics    *Slab[InputContext[T]]
}

// NewInputMethod creates an IM with the given id and locale.
func NewInputMethod[T any](id uint16, locale []byte) *InputMethod[T] {
	return &InputMethod[T]{id: id, locale: locale, ics: NewSlab[InputContext[T]]()}
}

// ID returns the IM's own slab-assigned id.
func (im *InputMethod[T]) ID() uint16 {
	return im.id
}

// Locale returns the IM's locale, shared with every IC created under
// it.
func (im *InputMethod[T]) Locale() []byte {
	return im.locale
}

// NewInputContext builds an IC sharing this IM's locale and id, inserts
// it into the IM's slab, and stamps the slab-assigned
// InputContextID into the stored value before returning — so there is
// never an observable moment where ic.InputContextID holds anything
// but its final value (§9 OPEN: insert-then-stamp-id).
func (im *InputMethod[T]) NewInputContext(clientWin uint32, userData T) (uint16, *InputContext[T]) {
	ic := NewInputContext(clientWin, im.id, im.locale, userData)
	id, p := im.ics.NewItem(ic)
	p.InputContextID = id
	return id, p
}

// GetInputContext returns the live IC for id, or ServerError
// ClientNotExists if none exists.
func (im *InputMethod[T]) GetInputContext(id uint16) (*InputContext[T], error) {
	ic := im.ics.GetItem(id)
	if ic == nil {
		return nil, ErrClientNotExists
	}
	return ic, nil
}

// RemoveInputContext removes and returns the IC for id, or
// ServerError ClientNotExists if none exists.
func (im *InputMethod[T]) RemoveInputContext(id uint16) (InputContext[T], error) {
	ic, ok := im.ics.RemoveItem(id)
	if !ok {
		return ic, ErrClientNotExists
	}
	return ic, nil
}

// DrainInputContexts removes and returns every remaining IC, leaving
// the IM with none. Used by Close and connection teardown.
func (im *InputMethod[T]) DrainInputContexts() []InputContext[T] {
	drained := im.ics.Drain()
	out := make([]InputContext[T], len(drained))
	for i, d := range drained {
		out[i] = d.Value
	}
	return out
}
