package service

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestHistory_AddAndList(t *testing.T) {
	h := NewHistory(5)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	a := h.Add("aaaaaaaa", false)
	b := h.Add("bbbbbbbb!", true)

	if a.ID == b.ID {
		t.Fatal("expected distinct ids")
	}
	if !a.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", a.CreatedAt, fixed)
	}
	if b.Length != 9 || !b.IncludeSpecials {
		t.Errorf("unexpected entry %+v", b)
	}

	list := h.List()
	if len(list) != 2 || list[0].ID != b.ID || list[1].ID != a.ID {
		t.Errorf("List() = %+v, want newest first", list)
	}
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(3)
	var ids []string
	for _, pw := range []string{"one", "two", "three", "four"} {
		ids = append(ids, h.Add(pw, false).ID)
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if _, err := h.Get(ids[0]); !errors.Is(err, ErrHistoryEntryNotFound) {
		t.Errorf("oldest entry should be dropped, got err %v", err)
	}

	latest, ok := h.Latest()
	if !ok || latest.Password != "four" {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
	if got := h.List()[2].Password; got != "two" {
		t.Errorf("oldest remaining = %q, want %q", got, "two")
	}
}

func TestHistory_EmptyAndClear(t *testing.T) {
	h := NewHistory(0)
	if _, ok := h.Latest(); ok {
		t.Error("Latest() on empty history should report false")
	}

	h.Add("x", false)
	h.Add("y", false)
	if h.Len() != 1 {
		t.Errorf("size below 1 should be clamped to 1, got %d", h.Len())
	}

	h.Clear()
	if h.Len() != 0 || len(h.List()) != 0 {
		t.Error("Clear() should drop every entry")
	}
}

func TestHistory_ConcurrentAdd(t *testing.T) {
	h := NewHistory(100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Add("concurrent", true)
		}()
	}
	wg.Wait()

	if h.Len() != 50 {
		t.Errorf("Len() = %d, want 50", h.Len())
	}
}
