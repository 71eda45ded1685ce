package xim

import "testing"

func TestSlabNewItemAssignsStableDenseIDs(t *testing.T) {
	s := NewSlab[string]()

	id1, p1 := s.NewItem("a")
	id2, p2 := s.NewItem("b")

	if id1 == 0 || id2 == 0 {
		t.Fatalf("ids must never be 0: got %d, %d", id1, id2)
	}
	if id1 == id2 {
		t.Fatalf("ids must be distinct: both %d", id1)
	}
	if *p1 != "a" || *p2 != "b" {
		t.Fatalf("NewItem did not return a pointer to the stored value")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestSlabGetItemAbsentIsNil(t *testing.T) {
	s := NewSlab[int]()
	if p := s.GetItem(0); p != nil {
		t.Fatalf("GetItem(0) = %v, want nil", p)
	}
	if p := s.GetItem(99); p != nil {
		t.Fatalf("GetItem(99) = %v, want nil", p)
	}
}

func TestSlabRemoveItemFreesIDForReuse(t *testing.T) {
	s := NewSlab[int]()

	id1, _ := s.NewItem(1)
	id2, _ := s.NewItem(2)

	v, ok := s.RemoveItem(id1)
	if !ok || v != 1 {
		t.Fatalf("RemoveItem(id1) = %v, %v, want 1, true", v, ok)
	}
	if s.GetItem(id1) != nil {
		t.Fatalf("GetItem after remove should be nil")
	}

	id3, _ := s.NewItem(3)
	if id3 != id1 {
		t.Fatalf("freed id %d was not reused, got new id %d", id1, id3)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	if _, ok := s.RemoveItem(id2); !ok {
		t.Fatalf("RemoveItem(id2): want ok")
	}
	if _, ok := s.RemoveItem(id2); ok {
		t.Fatalf("RemoveItem must not double-free")
	}
}

// TestSlabNewItemReusesSmallestFreeID pins §4.2's "smallest free id"
// contract against LIFO reuse: ids 1,2,3 inserted, then 2 and 3 freed
// in that order, must hand back 2 before 3 on the next two inserts.
func TestSlabNewItemReusesSmallestFreeID(t *testing.T) {
	s := NewSlab[int]()

	id1, _ := s.NewItem(1)
	id2, _ := s.NewItem(2)
	id3, _ := s.NewItem(3)

	if _, ok := s.RemoveItem(id2); !ok {
		t.Fatalf("RemoveItem(id2): want ok")
	}
	if _, ok := s.RemoveItem(id3); !ok {
		t.Fatalf("RemoveItem(id3): want ok")
	}

	gotFirst, _ := s.NewItem(20)
	if gotFirst != id2 {
		t.Fatalf("first reuse after freeing {id2, id3} = %d, want smallest free id %d", gotFirst, id2)
	}

	gotSecond, _ := s.NewItem(30)
	if gotSecond != id3 {
		t.Fatalf("second reuse = %d, want %d", gotSecond, id3)
	}

	_ = id1
}

func TestSlabDrainEmptiesSlab(t *testing.T) {
	s := NewSlab[int]()
	s.NewItem(10)
	s.NewItem(20)

	drained := s.Drain()
	if len(drained) != 2 {
		t.Fatalf("Drain() returned %d items, want 2", len(drained))
	}
	if s.Len() != 0 {
		t.Fatalf("Len() after Drain = %d, want 0", s.Len())
	}
	if s.GetItem(drained[0].ID) != nil {
		t.Fatalf("item should no longer be reachable after Drain")
	}
}
