package xim

import (
	"bytes"
	"log"

	"github.com/netrack/xim/wire"
)

// focusTarget names the one IC currently holding input focus on a
// connection, if any (§4.4, S5).
type focusTarget struct {
	imID uint16
	icID uint16
}

// Connection is the per-client_win state machine (§4.4): the set of
// Input Methods it owns, which IC (if any) is focused, and the
// negotiated byte order. S is the transport-provided Server type a
// handler callback receives; T is the handler's per-IC payload type.
// Grounded on connection.rs's XimConnection<T> and its handle_request
// match.
type Connection[S Server, T any] struct {
	// ClientWin is the window replies for this connection are sent
	// to.
	ClientWin uint32

	byteOrder    wire.ByteOrder
	disconnected bool
	focused      *focusTarget

	ims     *Slab[InputMethod[T]]
	handler ServerHandler[S, T]
}

// NewConnection creates a Connection for clientWin, defaulting to
// big-endian until a Connect request negotiates otherwise (§6.4).
func NewConnection[S Server, T any](clientWin uint32, handler ServerHandler[S, T]) *Connection[S, T] {
	return &Connection[S, T]{
		ClientWin: clientWin,
		byteOrder: wire.BigEndian,
		ims:       NewSlab[InputMethod[T]](),
		handler:   handler,
	}
}

// ByteOrder returns the order negotiated at Connect, for the
// transport to use when framing subsequent reads/writes on this
// connection (§6.4). Threading byte order is the transport's
// responsibility; the codec itself never assumes host order.
func (c *Connection[S, T]) ByteOrder() wire.ByteOrder {
	return c.byteOrder
}

// Disconnected reports whether a Disconnect request has already been
// processed on this connection.
func (c *Connection[S, T]) Disconnected() bool {
	return c.disconnected
}

// Shutdown tears down every IM and IC this connection still owns,
// notifying the handler for each IC exactly as an explicit Close
// would (§4.4: "resource teardown is the same path whether requested
// or implied by connection loss"). Used both by explicit Disconnect
// handling and by a transport reacting to an unexpected connection
// drop.
func (c *Connection[S, T]) Shutdown() {
	for _, drained := range c.ims.Drain() {
		im := drained.Value
		for _, ic := range im.DrainInputContexts() {
			c.handler.HandleDestroyIC(ic)
		}
	}
	c.focused = nil
}

// HandleRequest advances the state machine by one request, sending
// whatever reply the request implies through core and invoking
// handler callbacks as needed. A returned error is ErrClientNotExists
// for an unknown IM or IC id, or the error a handler callback or
// core.SendRequest returned, passed through unchanged; send failures
// are not wrapped in TransportError. Protocol-level XIM errors are
// reported to the client as Error requests instead and never surface
// as a Go error here.
func (c *Connection[S, T]) HandleRequest(core S, req *Request) error {
	if c.disconnected {
		// §3: "while disconnected=true, no state mutations other than
		// destruction are permitted". The registry is expected to tear
		// the connection down promptly after Disconnect; anything that
		// still arrives afterwards is logged and dropped.
		log.Printf("xim: request %T received on disconnected connection (client_win=%d), ignoring", req.Body, c.ClientWin)
		return nil
	}

	switch body := req.Body.(type) {
	case *ErrorBody:
		log.Printf("xim: client reported error %v: %s", body.Code, body.Detail)
		return nil
	case *ConnectBody:
		return c.handleConnect(core, body)
	case *DisconnectBody:
		return c.handleDisconnect(core, body)
	case *OpenBody:
		return c.handleOpen(core, body)
	case *CloseBody:
		return c.handleClose(core, body)
	case *CreateIcBody:
		return c.handleCreateIc(core, body)
	case *DestroyIcBody:
		return c.handleDestroyIc(core, body)
	case *QueryExtensionBody:
		return c.handleQueryExtension(core, body)
	case *EncodingNegotiationBody:
		return c.handleEncodingNegotiation(core, body)
	case *GetImValuesBody:
		return c.handleGetImValues(core, body)
	case *SetIcValuesBody:
		return c.handleSetIcValues(core, body)
	case *SetIcFocusBody:
		return c.handleSetIcFocus(body)
	case *UnsetIcFocusBody:
		return c.handleUnsetIcFocus(body)
	case *PreeditStartReplyBody:
		return c.handlePreeditStartReply(core, body)
	case *PreeditCaretReplyBody:
		return c.handlePreeditCaretReply(core, body)
	case *ForwardEventBody:
		return c.handleForwardEvent(core, body)
	default:
		// *Reply bodies the client would never send, and any opcode
		// this core does not originate on its own: logged, not treated
		// as a protocol violation (§4.4: "any unmatched request is
		// logged and ignored").
		log.Printf("xim: unmatched request %T on client_win=%d", req.Body, c.ClientWin)
		return nil
	}
}

func (c *Connection[S, T]) handleConnect(core S, body *ConnectBody) error {
	if body.ByteOrder == 'l' {
		c.byteOrder = wire.LittleEndian
	} else {
		c.byteOrder = wire.BigEndian
	}

	if err := c.handler.HandleConnect(core); err != nil {
		return err
	}

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorConnectReply,
		Body: &ConnectReplyBody{
			ServerMajorProtocolVersion: body.ClientMajorProtocolVersion,
			ServerMinorProtocolVersion: body.ClientMinorProtocolVersion,
		},
	})
}

func (c *Connection[S, T]) handleDisconnect(core S, _ *DisconnectBody) error {
	c.Shutdown()
	c.disconnected = true

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorDisconnectReply,
		Body:  &DisconnectReplyBody{},
	})
}

func (c *Connection[S, T]) handleOpen(core S, body *OpenBody) error {
	im := NewInputMethod[T](0, body.Locale)
	id, p := c.ims.NewItem(*im)
	p.id = id

	imAttrs, icAttrs := fixedAttrSchedule()

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorOpenReply,
		Body: &OpenReplyBody{
			InputMethodID: id,
			IMAttrs:       imAttrs,
			ICAttrs:       icAttrs,
		},
	})
}

func (c *Connection[S, T]) handleClose(core S, body *CloseBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}

	for _, ic := range im.DrainInputContexts() {
		c.handler.HandleDestroyIC(ic)
		if c.focused != nil && c.focused.imID == body.InputMethodID && c.focused.icID == ic.InputContextID {
			c.focused = nil
		}
	}
	c.ims.RemoveItem(body.InputMethodID)

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorCloseReply,
		Body:  &CloseReplyBody{InputMethodID: body.InputMethodID},
	})
}

func (c *Connection[S, T]) handleCreateIc(core S, body *CreateIcBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}

	icID, ic := im.NewInputContext(c.ClientWin, c.handler.NewICData())
	setICAttrs(ic, []wire.Attribute(body.Attributes), c.byteOrder)

	if err := c.handler.HandleCreateIC(core, ic); err != nil {
		return err
	}

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorCreateIcReply,
		Body:  &CreateIcReplyBody{InputMethodID: body.InputMethodID, InputContextID: icID},
	})
}

func (c *Connection[S, T]) handleDestroyIc(core S, body *DestroyIcBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}

	ic, err := im.RemoveInputContext(body.InputContextID)
	if err != nil {
		return err
	}
	c.handler.HandleDestroyIC(ic)

	if c.focused != nil && c.focused.imID == body.InputMethodID && c.focused.icID == body.InputContextID {
		c.focused = nil
	}

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorDestroyIcReply,
		Body:  &DestroyIcReplyBody{InputMethodID: body.InputMethodID, InputContextID: body.InputContextID},
	})
}

func (c *Connection[S, T]) handleQueryExtension(core S, body *QueryExtensionBody) error {
	// This core advertises no extensions (Non-goals): always an empty
	// reply regardless of what was requested.
	return core.SendRequest(c.ClientWin, &Request{
		Major: majorQueryExtensionReply,
		Body:  &QueryExtensionReplyBody{InputMethodID: body.InputMethodID},
	})
}

// compoundTextPrefix is the only encoding name this core ever accepts
// (§4.4, S3): "Only COMPOUND_TEXT encoding is supported".
const compoundTextPrefix = "COMPOUND_TEXT"

func (c *Connection[S, T]) handleEncodingNegotiation(core S, body *EncodingNegotiationBody) error {
	for i, enc := range body.Encodings {
		if bytes.HasPrefix([]byte(enc), []byte(compoundTextPrefix)) {
			return core.SendRequest(c.ClientWin, &Request{
				Major: majorEncodingNegotiationReply,
				Body:  &EncodingNegotiationReplyBody{InputMethodID: body.InputMethodID, EncodingIndex: uint16(i)},
			})
		}
	}

	return core.Error(c.ClientWin, ErrorFlagInputMethodIDValid, ErrorCodeBadName,
		"Only COMPOUND_TEXT encoding is supported", body.InputMethodID, 0)
}

func (c *Connection[S, T]) handleGetImValues(core S, body *GetImValuesBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}

	attrs := make(wire.AttributeList, 0, len(body.AttributeIDs))
	for _, id := range body.AttributeIDs {
		if id != icAttrInputStyle {
			return core.Error(c.ClientWin, ErrorFlagInputMethodIDValid, ErrorCodeBadName,
				"unknown IM attribute id", body.InputMethodID, 0)
		}

		w := wire.NewWriter(c.byteOrder)
		InputStyleList{Styles: c.handler.InputStyles()}.Write(w)
		attrs = append(attrs, wire.Attribute{ID: id, Value: wire.ByteString(w.Bytes())})
	}

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorGetImValuesReply,
		Body:  &GetImValuesReplyBody{InputMethodID: body.InputMethodID, Attributes: attrs},
	})
}

func (c *Connection[S, T]) handleSetIcValues(core S, body *SetIcValuesBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}

	ic, err := im.GetInputContext(body.InputContextID)
	if err != nil {
		return err
	}
	setICAttrs(ic, []wire.Attribute(body.Attributes), c.byteOrder)

	return core.SendRequest(c.ClientWin, &Request{
		Major: majorSetIcValuesReply,
		Body:  &SetIcValuesReplyBody{InputMethodID: body.InputMethodID, InputContextID: body.InputContextID},
	})
}

func (c *Connection[S, T]) handleSetIcFocus(body *SetIcFocusBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}
	if _, err := im.GetInputContext(body.InputContextID); err != nil {
		return err
	}

	c.focused = &focusTarget{imID: body.InputMethodID, icID: body.InputContextID}
	return nil
}

func (c *Connection[S, T]) handleUnsetIcFocus(body *UnsetIcFocusBody) error {
	if c.focused != nil && c.focused.imID == body.InputMethodID && c.focused.icID == body.InputContextID {
		c.focused = nil
	}
	return nil
}

func (c *Connection[S, T]) handlePreeditStartReply(core S, body *PreeditStartReplyBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}
	ic, err := im.GetInputContext(body.InputContextID)
	if err != nil {
		return err
	}
	return c.handler.HandlePreeditStart(core, ic)
}

func (c *Connection[S, T]) handlePreeditCaretReply(core S, body *PreeditCaretReplyBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}
	ic, err := im.GetInputContext(body.InputContextID)
	if err != nil {
		return err
	}
	return c.handler.HandleCaret(core, ic, body.Position)
}

func (c *Connection[S, T]) handleForwardEvent(core S, body *ForwardEventBody) error {
	im := c.ims.GetItem(body.InputMethodID)
	if im == nil {
		return ErrClientNotExists
	}
	ic, err := im.GetInputContext(body.InputContextID)
	if err != nil {
		return err
	}

	ev := core.DeserializeEvent(body.Event)
	consumed, err := c.handler.HandleForwardEvent(core, ic, ev)
	if err != nil {
		return err
	}

	// Unfiltered: pass the event through to the client with the
	// SYNCHRONOUS flag cleared, ahead of the SyncReply that
	// acknowledges it (§4.4, S4 — pass-through precedes SyncReply).
	if !consumed {
		passThrough := *body
		passThrough.Flag = 0
		if err := core.SendRequest(ic.ClientWin, &Request{Major: majorForwardEvent, Body: &passThrough}); err != nil {
			return err
		}
	}

	if body.Flag.Contains(ForwardEventSynchronous) {
		return core.SendRequest(c.ClientWin, &Request{
			Major: majorSyncReply,
			Body:  &SyncReplyBody{InputMethodID: body.InputMethodID, InputContextID: body.InputContextID},
		})
	}

	return nil
}

// fixedAttrSchedule returns the IM- and IC-level attribute descriptor
// tables advertised in every OpenReply (§6.3). The schedule is fixed:
// every Open sees the same descriptors, matching attrparser.go's
// closed set of recognized attribute ids.
func fixedAttrSchedule() (imAttrs, icAttrs AttrList) {
	imAttrs = AttrList{
		{ID: icAttrInputStyle, Name: AttributeNameQueryInputStyle, Type: AttrTypeStyle},
	}
	icAttrs = AttrList{
		{ID: icAttrInputStyle, Name: AttributeNameInputStyle, Type: AttrTypeLong},
		{ID: icAttrClientWin, Name: AttributeNameClientWindow, Type: AttrTypeWindow},
		{ID: icAttrFocusWin, Name: AttributeNameFocusWindow, Type: AttrTypeWindow},
		{ID: icAttrPreeditAttrs, Name: AttributeNamePreeditAttributes, Type: AttrTypeNestedList},
		{ID: icAttrSpotLocation, Name: AttributeNameSpotLocation, Type: AttrTypeXPoint},
		{ID: icAttrNestedSep, Name: AttributeNameSeparatorOfNested, Type: AttrTypeSeparator},
	}
	return imAttrs, icAttrs
}
