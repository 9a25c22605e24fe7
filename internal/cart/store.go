package cart

import (
	"sync"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
)

// Snapshot is a read-only view of one session's cart.
type Snapshot struct {
	Items []domain.LineItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// Store holds carts keyed by session id. Each cart belongs to a single
// visitor; the lock only exists because one process hosts every session.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) AddItem(sessionID string, item domain.LineItem) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.AddItem(item)
	return snapshot(cart)
}

func (s *Store) UpdateQuantity(sessionID, productID string, quantity int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.UpdateQuantity(productID, quantity)
	return snapshot(cart)
}

func (s *Store) RemoveItem(sessionID, productID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.RemoveItem(productID)
	return snapshot(cart)
}

// Clear empties the session's cart, as happens after a successful order.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *Store) Get(sessionID string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return Snapshot{Items: []domain.LineItem{}}
	}
	return snapshot(cart)
}

func (s *Store) cart(sessionID string) *Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &Cart{}
		s.carts[sessionID] = cart
	}
	return cart
}

func snapshot(c *Cart) Snapshot {
	return Snapshot{Items: c.Items(), Total: c.Total(), Count: c.Count()}
}
