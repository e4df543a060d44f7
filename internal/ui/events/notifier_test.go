package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyRunsListenersInOrder(t *testing.T) {
	var n Notifier
	var calls []string
	n.Subscribe(func() { calls = append(calls, "first") })
	n.Subscribe(func() { calls = append(calls, "second") })

	n.Notify()

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestUnsubscribe(t *testing.T) {
	var n Notifier
	count := 0
	stop := n.Subscribe(func() { count++ })
	n.Notify()
	stop()
	stop()
	n.Notify()

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, n.Len())
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	var n Notifier
	count := 0
	var stop func()
	stop = n.Subscribe(func() {
		count++
		stop()
	})
	n.Subscribe(func() { count++ })

	n.Notify()
	n.Notify()

	assert.Equal(t, 3, count)
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, n.Notify)
	assert.Equal(t, 0, n.Len())
}
