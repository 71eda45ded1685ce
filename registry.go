package xim

import "sync"

// Registry is the top-level connection table, keyed by the
// communication window the host window server assigns each client
// (§4.5). One Registry serves every connection an embedder's
// transport accepts, sharing a single ServerHandler across them.
// Grounded on connection.rs's XimConnections<T>.
type Registry[S Server, T any] struct {
	mu      sync.RWMutex
	conns   map[uint32]*Connection[S, T]
	handler ServerHandler[S, T]
}

// NewRegistry creates an empty Registry backed by handler.
func NewRegistry[S Server, T any](handler ServerHandler[S, T]) *Registry[S, T] {
	return &Registry[S, T]{
		conns:   make(map[uint32]*Connection[S, T]),
		handler: handler,
	}
}

// NewConnection creates and registers a Connection for comWin,
// replacing any connection already registered under that window.
// clientWin is the X window replies are addressed to, distinct from
// comWin (the communication window used purely for routing, §4.5/§6.5
// glossary: "com_win / client_win: X windows used to route XIM
// messages to the communication endpoint and to the client,
// respectively").
func (reg *Registry[S, T]) NewConnection(comWin, clientWin uint32) *Connection[S, T] {
	conn := NewConnection[S, T](clientWin, reg.handler)

	reg.mu.Lock()
	reg.conns[comWin] = conn
	reg.mu.Unlock()

	return conn
}

// GetConnection returns the connection registered for comWin, or nil
// if none exists.
func (reg *Registry[S, T]) GetConnection(comWin uint32) *Connection[S, T] {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.conns[comWin]
}

// RemoveConnection tears down and unregisters the connection for
// comWin. Safe to call whether or not a Disconnect request was ever
// received: Shutdown is idempotent with respect to an already-drained
// connection.
func (reg *Registry[S, T]) RemoveConnection(comWin uint32) {
	reg.mu.Lock()
	conn, ok := reg.conns[comWin]
	delete(reg.conns, comWin)
	reg.mu.Unlock()

	if ok {
		conn.Shutdown()
	}
}

// Len reports the number of currently registered connections.
func (reg *Registry[S, T]) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.conns)
}
