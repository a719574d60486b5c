// Package store holds the in-memory list of todo items.
//
// A Store is owned by a single event loop (the TUI's Update or the script
// runner) and is not safe for concurrent use.
package store

import "github.com/idilsaglam/todolist/internal/model"

// Store is an ordered, append-only sequence of items. Insertion order is
// creation order and IDs are never reused.
type Store struct {
	items  []model.Item
	lastID int
}

// New returns an empty store. The first created item gets ID 1.
func New() *Store {
	return &Store{}
}

// Create appends a new pending item and returns it. Text is taken as-is;
// rejecting empty input is the caller's job.
func (s *Store) Create(text string) model.Item {
	it := model.Item{
		ID:   s.lastID + 1,
		Text: text,
	}
	s.lastID = it.ID
	s.items = append(s.items, it)
	return it
}

// SetDone sets the completion flag of the item with the given id.
// An unknown id is a no-op; the result only reports whether an item matched.
func (s *Store) SetDone(id int, done bool) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Done = done
	return true
}

// Toggle flips the completion flag of the item with the given id.
func (s *Store) Toggle(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Done = !s.items[i].Done
	return true
}

// Get returns the item with the given id.
func (s *Store) Get(id int) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Items returns a copy of every item in creation order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Pending returns the items not yet done, in creation order.
func (s *Store) Pending() []model.Item { return s.filter(false) }

// Done returns the completed items, in creation order.
func (s *Store) Done() []model.Item { return s.filter(true) }

// Len returns the number of items ever created.
func (s *Store) Len() int { return len(s.items) }

// Stats counts done and pending items.
func (s *Store) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) filter(done bool) []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Done == done {
			out = append(out, it)
		}
	}
	return out
}

// index returns the position of id in items, or -1.
func (s *Store) index(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
