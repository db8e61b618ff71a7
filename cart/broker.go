package cart

import "sync"

// Broker fans a saved cart out to every other client watching the same
// key, the server-side equivalent of the browser storage event. Delivery
// is synchronous and skips the writer itself.
type Broker struct {
	mu   sync.Mutex
	next uint64
	subs map[string]map[uint64]func([]Line)
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[uint64]func([]Line))}
}

// Subscription identifies one subscriber so a publisher can be skipped
// when its own write fans out.
type Subscription struct {
	broker *Broker
	key    string
	id     uint64
}

func (b *Broker) Subscribe(key string, fn func([]Line)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	if b.subs[key] == nil {
		b.subs[key] = make(map[uint64]func([]Line))
	}
	b.subs[key][b.next] = fn
	return &Subscription{broker: b, key: key, id: b.next}
}

func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	b := s.broker
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs := b.subs[s.key]; subs != nil {
		delete(subs, s.id)
		if len(subs) == 0 {
			delete(b.subs, s.key)
		}
	}
}

// Publish delivers lines to every subscriber for key except origin. Each
// subscriber gets its own copy.
func (b *Broker) Publish(key string, origin *Subscription, lines []Line) {
	b.mu.Lock()
	var fns []func([]Line)
	for id, fn := range b.subs[key] {
		if origin != nil && id == origin.id {
			continue
		}
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(cloneLines(lines))
	}
}
