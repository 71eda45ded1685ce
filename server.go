package xim

import "fmt"

// ServerError is the error taxonomy surfaced to a dispatcher's caller
// (§7). Protocol-level XIM errors (BadName, etc.) are never returned
// as a Go error — they are sent to the client as Error requests
// instead (see Connection.HandleRequest's EncodingNegotiation and
// GetImValues arms).
type ServerError struct {
	// Kind is one of the ServerError* constants below.
	Kind ServerErrorKind
	// Err is the wrapped transport error, set only when Kind is
	// ServerErrorTransport.
	Err error
}

// ServerErrorKind enumerates the error taxonomy of §7.
type ServerErrorKind int

const (
	// ServerErrorClientNotExists marks a reference to an unknown IM or
	// IC id.
	ServerErrorClientNotExists ServerErrorKind = iota
	// ServerErrorTransport marks a send failure from the server-send
	// interface.
	ServerErrorTransport
)

func (e *ServerError) Error() string {
	switch e.Kind {
	case ServerErrorClientNotExists:
		return "xim: client does not exist"
	case ServerErrorTransport:
		return fmt.Sprintf("xim: transport error: %v", e.Err)
	default:
		return "xim: server error"
	}
}

// Unwrap exposes the wrapped transport error for errors.Is/As.
func (e *ServerError) Unwrap() error {
	return e.Err
}

// ErrClientNotExists is the sentinel ServerError returned whenever an
// IM or IC id lookup fails (§4.4: "Lookup failures ... abort the
// handler with ClientNotExists").
var ErrClientNotExists = &ServerError{Kind: ServerErrorClientNotExists}

// TransportError wraps a send failure from the server-send interface
// into a ServerError (§7). Connection.HandleRequest does not call it:
// it returns SendRequest errors unwrapped.
func TransportError(err error) *ServerError {
	return &ServerError{Kind: ServerErrorTransport, Err: err}
}

// XEvent is the deserialized form of the opaque event blob a
// ForwardEvent request carries. Its shape is dictated entirely by the
// host window server (§1); the core only threads it from
// ServerCore.DeserializeEvent into ServerHandler.HandleForwardEvent
// without interpreting it.
type XEvent interface{}

// ServerCore is the transport contract a connection relies on to send
// replies and to decode the opaque event blob carried by ForwardEvent
// (§6.1). It is supplied by the embedding transport layer, which is
// out of scope for this core (§1).
type ServerCore interface {
	// SendRequest enqueues req for delivery to targetWin. Replies
	// enqueued while handling one request must reach the wire before
	// the next request is handled (§5).
	SendRequest(targetWin uint32, req *Request) error

	// DeserializeEvent turns the opaque blob carried by a ForwardEvent
	// request into the XEvent a handler can inspect.
	DeserializeEvent(blob []byte) XEvent
}

// Server is the richer transport surface a handler callback receives,
// adding the Error shorthand (§6.1) on top of ServerCore.
type Server interface {
	ServerCore

	// Error sends an Error request to targetWin. imID/icID of 0 mean
	// "not applicable"; flag should be set to reflect which of them
	// is meaningful.
	Error(targetWin uint32, flag ErrorFlag, code ErrorCode, detail string, imID, icID uint16) error
}

// server adapts a ServerCore into a Server by implementing the Error
// shorthand in terms of SendRequest, the way a thin wrapper type would
// in the teacher (c.f. response.WriteHeader building on Conn.Write).
type server struct {
	ServerCore
}

// NewServer wraps core with the Error shorthand (§6.1), giving
// handlers the full Server interface from a transport that only
// implements ServerCore.
func NewServer(core ServerCore) Server {
	return &server{core}
}

func (s *server) Error(targetWin uint32, flag ErrorFlag, code ErrorCode, detail string, imID, icID uint16) error {
	return s.SendRequest(targetWin, &Request{
		Major: majorError,
		Body: &ErrorBody{
			InputMethodID:  imID,
			InputContextID: icID,
			Flag:           flag,
			Code:           code,
			Detail:         []byte(detail),
		},
	})
}

// ServerHandler is the embedder-provided IME engine contract (§6.2).
// T is the per-IC user data type threaded through InputContext[T].
type ServerHandler[S Server, T any] interface {
	// NewICData returns a fresh per-IC payload at CreateIc.
	NewICData() T

	// InputStyles returns the styles reported in the GetImValues reply
	// for attribute id 0 (INPUTSTYLE).
	InputStyles() []InputStyle

	HandleConnect(server S) error
	HandleCreateIC(server S, ic *InputContext[T]) error
	HandleDestroyIC(ic InputContext[T])
	HandlePreeditStart(server S, ic *InputContext[T]) error
	HandleCaret(server S, ic *InputContext[T], position int32) error
	// HandleForwardEvent reports whether the event was consumed by the
	// input method; an unconsumed event is passed through to the
	// client with its flag cleared (§4.4).
	HandleForwardEvent(server S, ic *InputContext[T], ev XEvent) (bool, error)
}
