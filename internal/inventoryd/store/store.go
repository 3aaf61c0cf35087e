// Package store implements the in-memory inventory store.
//
// The store is the single owner of the live item-to-count map. Every update is
// a read-modify-write under one critical section, so concurrent updates can
// never produce a lost write or an observable negative count.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kiosk404/stockmind/internal/inventory"
)

// RejectionError is returned when an update would drive an item's count
// below zero. The message doubles as the HTTP 400 detail string.
type RejectionError struct {
	Item    string
	Current int
	Change  int
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("Cannot reduce %s count below zero. Current: %d, Attempted change: %d",
		e.Item, e.Current, e.Change)
}

// UnknownItemError is returned in strict mode when the item is not one of
// the recognized identifiers.
type UnknownItemError struct {
	Item string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %q", e.Item)
}

// Store holds inventory counts. Whether unknown items are auto-created at
// zero or rejected is a deployment policy fixed at construction.
type Store struct {
	mu     sync.RWMutex
	counts inventory.Snapshot
	strict bool
}

// New creates a Store seeded with the given stock. When strict is true,
// updates for items outside the seed set are rejected; otherwise unknown
// items are auto-created at zero.
func New(initial inventory.Snapshot, strict bool) *Store {
	if len(initial) == 0 {
		initial = inventory.DefaultStock
	}
	return &Store{
		counts: initial.Clone(),
		strict: strict,
	}
}

// Snapshot returns a copy of the current counts.
func (s *Store) Snapshot() inventory.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts.Clone()
}

// Items returns the recognized item identifiers in sorted order.
func (s *Store) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]string, 0, len(s.counts))
	for item := range s.counts {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Recognizes reports whether an update for item would pass the item-name
// policy. In non-strict mode every name is accepted.
func (s *Store) Recognizes(item string) bool {
	if !s.strict {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.counts[item]
	return ok
}

// Apply atomically adds change to item's count and returns the updated
// snapshot. The count is re-read under the lock, so a rejection decision and
// the write it guards can never interleave with another update.
func (s *Store) Apply(item string, change int) (inventory.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.counts[item]
	if !ok {
		if s.strict {
			return nil, &UnknownItemError{Item: item}
		}
		current = 0
	}

	next := current + change
	if next < 0 {
		return nil, &RejectionError{Item: item, Current: current, Change: change}
	}

	s.counts[item] = next
	return s.counts.Clone(), nil
}
