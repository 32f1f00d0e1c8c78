package storyview

// KeyHandler receives key values such as KeyArrowUp.
type KeyHandler func(key string)

// KeySource is a process-wide stream of key events that views subscribe to
// for as long as they are mounted.
type KeySource interface {
	// Subscribe registers h and returns a function that removes it.
	// The returned function is safe to call more than once.
	Subscribe(h KeyHandler) (unsubscribe func())
}

// Compile-time interface verification.
var _ KeySource = (*KeyBus)(nil)

// KeyBus is a KeySource fed by Dispatch. It is driven from the UI loop and
// is not safe for concurrent use.
type KeyBus struct {
	handlers map[int]KeyHandler
	order    []int
	nextID   int
}

// NewKeyBus returns an empty KeyBus.
func NewKeyBus() *KeyBus {
	return &KeyBus{handlers: make(map[int]KeyHandler)}
}

// Subscribe implements KeySource.
func (b *KeyBus) Subscribe(h KeyHandler) func() {
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)

	return func() {
		if _, ok := b.handlers[id]; !ok {
			return
		}
		delete(b.handlers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers key to every handler subscribed at the time of the call,
// in subscription order. Handlers removed during dispatch are skipped.
func (b *KeyBus) Dispatch(key string) {
	ids := make([]int, len(b.order))
	copy(ids, b.order)
	for _, id := range ids {
		if h, ok := b.handlers[id]; ok {
			h(key)
		}
	}
}

// Len returns the number of active subscriptions.
func (b *KeyBus) Len() int {
	return len(b.handlers)
}
