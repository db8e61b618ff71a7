package cart

import (
	"log"
	"sync"
)

// Product is the slice of catalog data a cart line snapshots when the
// product is first added. Display fields are not re-fetched afterwards.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	OfferPrice float64 `json:"offer_price"`
}

// Line is one product entry in a cart. ProductID is unique within a
// session and Quantity is always >= 1; a line decremented to zero is
// removed, never kept.
type Line struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	OfferPrice float64 `json:"offer_price"`
	Quantity   int     `json:"quantity"`
}

type Totals struct {
	TotalQuantity int     `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
	TotalSavings  float64 `json:"total_savings"`
}

// Session is the cart for one storage key. All mutations go through it,
// persist the full line slice, and fan out to other clients on the same
// key via the broker. Lines keep insertion order.
type Session struct {
	key    string
	store  *Store
	broker *Broker
	sub    *Subscription

	mu    sync.Mutex
	lines []Line
}

// Open loads the persisted cart for key, starting empty when nothing (or
// nothing readable) is stored, and subscribes for updates written by other
// clients of the same key.
func Open(key string, store *Store, broker *Broker) *Session {
	s := &Session{key: key, store: store, broker: broker}
	s.lines = store.Load(key)
	if broker != nil {
		s.sub = broker.Subscribe(key, s.replace)
	}
	return s
}

// Close detaches the session from the broker. The persisted cart stays.
func (s *Session) Close() {
	if s.sub != nil {
		s.sub.Cancel()
	}
}

func (s *Session) Key() string { return s.key }

// Add inserts a new line with quantity 1, or bumps the quantity of the
// existing line for the same product. It never fails.
func (s *Session) Add(p Product) {
	s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].ProductID == p.ID {
				s.lines[i].Quantity++
				return
			}
		}
		s.lines = append(s.lines, Line{
			ProductID:  p.ID,
			Name:       p.Name,
			Image:      p.Image,
			Category:   p.Category,
			Price:      p.Price,
			OfferPrice: p.OfferPrice,
			Quantity:   1,
		})
	})
}

// Increase bumps the quantity of the matching line. Missing line is a no-op.
func (s *Session) Increase(productID string) {
	s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].ProductID == productID {
				s.lines[i].Quantity++
				return
			}
		}
	})
}

// Decrease drops the quantity of the matching line by one and removes the
// line entirely when it reaches zero.
func (s *Session) Decrease(productID string) {
	s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].ProductID == productID {
				s.lines[i].Quantity--
				if s.lines[i].Quantity <= 0 {
					s.lines = append(s.lines[:i], s.lines[i+1:]...)
				}
				return
			}
		}
	})
}

// Remove deletes the line regardless of its quantity.
func (s *Session) Remove(productID string) {
	s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].ProductID == productID {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
				return
			}
		}
	})
}

// SetQuantity sets the quantity of the matching line directly. n <= 0 is
// equivalent to Remove.
func (s *Session) SetQuantity(productID string, n int) {
	if n <= 0 {
		s.Remove(productID)
		return
	}
	s.mutate(func() {
		for i := range s.lines {
			if s.lines[i].ProductID == productID {
				s.lines[i].Quantity = n
				return
			}
		}
	})
}

// Clear empties the cart. The session itself stays usable.
func (s *Session) Clear() {
	s.mutate(func() {
		s.lines = nil
	})
}

// Lines returns a copy of the current lines in insertion order.
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

// Totals is always recomputed from the current lines, never cached.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for _, l := range s.lines {
		t.TotalQuantity += l.Quantity
		t.TotalAmount += float64(l.Quantity) * l.OfferPrice
		t.TotalSavings += float64(l.Quantity) * (l.Price - l.OfferPrice)
	}
	return t
}

// mutate applies fn under the lock, then persists and publishes the result.
// Persistence is a wholesale overwrite: the last writer for a key wins and
// there is no merge between concurrent writers.
func (s *Session) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snapshot := cloneLines(s.lines)
	s.mu.Unlock()

	if err := s.store.Save(s.key, snapshot); err != nil {
		// The in-memory cart is already updated; persistence failures
		// degrade to a log line, same as every other storage error here.
		log.Printf("⚠️ Failed to persist cart %q: %v", s.key, err)
		return
	}
	if s.broker != nil {
		s.broker.Publish(s.key, s.sub, snapshot)
	}
}

// replace swaps the in-memory lines with the state another client just
// persisted. Last writer wins; nothing is merged.
func (s *Session) replace(lines []Line) {
	s.mu.Lock()
	s.lines = cloneLines(lines)
	s.mu.Unlock()
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
