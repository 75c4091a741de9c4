package notification

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is a notification request queued for asynchronous delivery.
type Event struct {
	ClientID  string
	BookingID string
	Kind      Kind
	Message   string
}

// Dispatcher persists notifications off the request path. Delivery is
// best-effort: a full queue drops the event rather than blocking or failing
// the operation that produced it.
type Dispatcher struct {
	repo      Repository
	queue     chan Event
	done      chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(repo Repository) *Dispatcher {
	d := &Dispatcher{
		repo:  repo,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		n := &Notification{
			ClientID:  ev.ClientID,
			BookingID: ev.BookingID,
			Kind:      ev.Kind,
			Message:   ev.Message,
		}
		if err := d.repo.Create(ctx, n); err != nil {
			log.Printf("notification write failed: %v", err)
		}
		cancel()
	}
}

// Dispatch queues an event without blocking the caller.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notification queue full, dropping event")
	}
}

// Close drains pending events and stops the worker. Safe to call more than
// once.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}
