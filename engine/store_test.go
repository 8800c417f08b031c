package engine

import (
	"testing"

	"github.com/lixenwraith/helix/core"
)

func TestStoreAddGetRemove(t *testing.T) {
	s := NewStore[testTag]()
	e := core.Entity(1)

	if _, ok := s.Get(e); ok {
		t.Error("empty store returned a component")
	}

	s.Add(e, testTag{Value: 5})
	if v, ok := s.Get(e); !ok || v.Value != 5 {
		t.Errorf("expected {5}, got %+v ok=%v", v, ok)
	}

	// Add is upsert
	s.Add(e, testTag{Value: 9})
	if v, _ := s.Get(e); v.Value != 9 {
		t.Errorf("expected updated value 9, got %d", v.Value)
	}
	if s.Count() != 1 {
		t.Errorf("upsert duplicated entity, count %d", s.Count())
	}

	s.Remove(e)
	if s.Has(e) {
		t.Error("component still present after Remove")
	}
	s.Remove(e) // second remove is a no-op
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore[testTag]()
	s.Add(1, testTag{})
	s.Add(2, testTag{})

	all := s.All()
	all[0] = 99

	fresh := s.All()
	for _, e := range fresh {
		if e == 99 {
			t.Error("All exposed internal entity slice")
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testTag]()
	s.Add(1, testTag{})
	s.Add(2, testTag{})

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("expected empty store, count %d", s.Count())
	}
	if s.Has(1) {
		t.Error("component survived Clear")
	}
}
