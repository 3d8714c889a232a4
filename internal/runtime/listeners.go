package runtime

import "slices"

type listener[E any] struct {
	id uint64
	fn func(E)
}

// listeners is an ordered set of callbacks. Emission iterates over a snapshot, so a callback
// may subscribe or unsubscribe without affecting the current round.
type listeners[E any] struct {
	next    uint64
	entries []listener[E]
}

// add registers fn and returns an idempotent unsubscribe function.
func (l *listeners[E]) add(fn func(E)) func() {
	if fn == nil {
		return func() {}
	}
	l.next++
	id := l.next
	l.entries = append(l.entries, listener[E]{id: id, fn: fn})
	return func() {
		l.entries = slices.DeleteFunc(l.entries, func(e listener[E]) bool { return e.id == id })
	}
}

func (l *listeners[E]) emit(e E) {
	for _, entry := range slices.Clone(l.entries) {
		entry.fn(e)
	}
}
