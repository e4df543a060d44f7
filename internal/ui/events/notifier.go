// Package events carries in-process notifications between dialogs.
package events

// Notifier is a synchronous observer list. Listeners run on the caller's
// goroutine, in subscription order.
type Notifier struct {
	next      int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.next++
	id := n.next
	n.listeners = append(n.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every listener registered at the time of the call.
func (n *Notifier) Notify() {
	if n == nil {
		return
	}
	snapshot := append([]listener(nil), n.listeners...)
	for _, l := range snapshot {
		l.fn()
	}
}

// Len reports how many listeners are registered.
func (n *Notifier) Len() int {
	if n == nil {
		return 0
	}
	return len(n.listeners)
}
