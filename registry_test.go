package xim

import (
	"testing"

	"github.com/netrack/xim/wire"
)

func TestRegistryNewConnectionRegistersAndReplaces(t *testing.T) {
	reg := NewRegistry[Server, int](&fakeHandler{})

	first := reg.NewConnection(100, 200)
	if reg.GetConnection(100) != first {
		t.Fatal("GetConnection did not return the just-registered connection")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}

	second := reg.NewConnection(100, 200)
	if second == first {
		t.Fatal("NewConnection for an already-registered window must create a fresh connection")
	}
	if reg.GetConnection(100) != second {
		t.Fatal("GetConnection did not return the replacement connection")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() after replacement = %d, want 1", reg.Len())
	}
}

func TestRegistryGetConnectionAbsentIsNil(t *testing.T) {
	reg := NewRegistry[Server, int](&fakeHandler{})
	if reg.GetConnection(999) != nil {
		t.Fatal("GetConnection for an unregistered window must return nil")
	}
}

func TestRegistryRemoveConnectionShutsDown(t *testing.T) {
	h := &fakeHandler{}
	reg := NewRegistry[Server, int](h)
	core := &fakeCore{}
	server := NewServer(core)

	conn := reg.NewConnection(100, 200)
	conn.HandleRequest(server, &Request{Major: majorOpen, Body: &OpenBody{Locale: wire.ByteString("en_US")}})
	imID := core.last().Body.(*OpenReplyBody).InputMethodID
	conn.HandleRequest(server, &Request{Major: majorCreateIc, Body: &CreateIcBody{InputMethodID: imID}})

	reg.RemoveConnection(100)

	if reg.GetConnection(100) != nil {
		t.Fatal("connection still registered after RemoveConnection")
	}
	if reg.Len() != 0 {
		t.Fatalf("Len() after RemoveConnection = %d, want 0", reg.Len())
	}
	if len(h.destroyed) != 1 {
		t.Fatalf("HandleDestroyIC called %d times, want 1 (Shutdown must drain live ICs)", len(h.destroyed))
	}
}

func TestRegistryRemoveConnectionUnknownWindowIsNoop(t *testing.T) {
	reg := NewRegistry[Server, int](&fakeHandler{})
	reg.RemoveConnection(12345)
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
}
