package xim

import "github.com/netrack/xim/wire"

// InputContext is one text-entry target: its style, windows, preedit
// spot, and locale, plus an opaque engine-owned payload (§3). T is the
// handler's per-IC data type (ServerHandler.NewICData's return type).
type InputContext[T any] struct {
	// ClientWin is the X window replies addressed to this IC are sent
	// to.
	ClientWin uint32

	// AppWin and AppFocusWin are application-provided windows; zero
	// means absent, matching Optional<NonZero u32> (§3) since 0 is
	// never a valid X window id.
	AppWin      uint32
	AppFocusWin uint32

	InputMethodID  uint16
	InputContextID uint16

	InputStyle InputStyle

	PreeditSpot wire.Point

	Locale []byte

	// UserData is the engine-owned payload created by
	// ServerHandler.NewICData and freely mutated by handler callbacks.
	UserData T
}

// NewInputContext builds an IC in its initial state: empty style,
// (0,0) preedit spot, no app windows, locale inherited from the owning
// IM (§3). InputContextID is the placeholder 0 until the owning IM
// inserts it into its slab and stamps the assigned id.
func NewInputContext[T any](clientWin uint32, imID uint16, locale []byte, userData T) InputContext[T] {
	return InputContext[T]{
		ClientWin:     clientWin,
		InputMethodID: imID,
		Locale:        locale,
		UserData:      userData,
	}
}
