package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/securepass/securepass-go/internal/model"
)

var ErrHistoryEntryNotFound = errors.New("history entry not found")

// History keeps the most recent generated passwords for the life of the
// process. It is bounded; the oldest entry is dropped once full.
type History struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
	size    int
	now     func() time.Time
}

// NewHistory creates a History holding at most size entries.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{
		entries: make([]model.HistoryEntry, 0, size),
		size:    size,
		now:     time.Now,
	}
}

// Add records a generated password and returns the stored entry.
func (h *History) Add(password string, includeSpecials bool) model.HistoryEntry {
	entry := model.HistoryEntry{
		ID:              uuid.NewString(),
		Password:        password,
		Length:          len(password),
		IncludeSpecials: includeSpecials,
		CreatedAt:       h.now().UTC(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == h.size {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, entry)

	return entry
}

// List returns a snapshot of all entries, newest first.
func (h *History) List() []model.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]model.HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Latest returns the most recently added entry.
func (h *History) Latest() (model.HistoryEntry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return model.HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Get looks up an entry by ID.
func (h *History) Get(id string) (model.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.HistoryEntry{}, ErrHistoryEntryNotFound
}

// Len reports how many entries are held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear drops every entry.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
}
