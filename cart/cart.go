// Package cart holds per-session shopping carts in memory. Carts are
// ephemeral: they live only as long as the process and are keyed by the
// session cookie, never persisted.
package cart

import "sync"

type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}

// Store is a concurrency-safe map of session id -> line items. Handlers
// receive it as an injected handle rather than a package global.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]Item
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]Item)}
}

// Add appends the item with qty 1, or bumps the existing line's qty when the
// product is already in the cart. At most one line per product id.
func (s *Store) Add(sessionID string, it Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	for i := range items {
		if items[i].ProductID == it.ProductID {
			items[i].Qty++
			return
		}
	}
	it.Qty = 1
	s.sessions[sessionID] = append(items, it)
}

// Increment bumps a line's qty by one. Absent product ids are a no-op.
func (s *Store) Increment(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty++
			return
		}
	}
}

// Decrement lowers a line's qty by one, removing the line when it reaches
// zero. Absent product ids are a no-op.
func (s *Store) Decrement(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	for i := range items {
		if items[i].ProductID == productID {
			if items[i].Qty <= 1 {
				s.sessions[sessionID] = append(items[:i], items[i+1:]...)
			} else {
				items[i].Qty--
			}
			return
		}
	}
}

// Remove deletes a line unconditionally.
func (s *Store) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	for i := range items {
		if items[i].ProductID == productID {
			s.sessions[sessionID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Clear empties the session's cart.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items(sessionID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Total is the sum of price*qty across all lines, recomputed on every call.
func (s *Store) Total(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, it := range s.sessions[sessionID] {
		total += it.Price * float64(it.Qty)
	}
	return total
}

// Count is the sum of quantities across all lines.
func (s *Store) Count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.sessions[sessionID] {
		count += it.Qty
	}
	return count
}
