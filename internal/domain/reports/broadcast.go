package reports

import "sync"

// Broadcaster fans a freshly generated batch out to every subscribed report
// view, so one generation pass updates all panels without re-fetching.
type Broadcaster struct {
	mu   sync.Mutex
	subs []chan Batch
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe returns a channel receiving published batches and a cancel func.
// A subscriber that falls behind sees only the most recent batch.
func (b *Broadcaster) Subscribe() (<-chan Batch, func()) {
	ch := make(chan Batch, 1)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub == ch {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// Publish delivers the batch to all current subscribers without blocking.
func (b *Broadcaster) Publish(batch Batch) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- batch:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- batch:
			default:
			}
		}
	}
}
