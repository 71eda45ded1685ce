// Package xim implements the server-side core of the X Input Method
// protocol: per-connection Input Method and Input Context state
// (Connection, InputMethod, InputContext), the request/reply dispatch
// table (Connection.HandleRequest), and the byte-exact wire codec
// request bodies are built from (package wire, xim_gen.go).
package xim

//go:generate go run ./cmd/ximgen -schema schema.yaml -out xim_gen.go -package xim
