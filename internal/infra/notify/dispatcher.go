package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/domain/booking"
)

type Publisher interface {
	Publish(ctx context.Context, event BookingConfirmed) error
	Close() error
}

type DropObserver interface {
	NotificationDropped()
}

type DispatcherOptions struct {
	QueueSize      int
	Workers        int
	PublishTimeout time.Duration
}

// Dispatcher decouples notification delivery from the reservation path.
// BookingConfirmed never blocks: when the queue is full the event is dropped
// and logged.
type Dispatcher struct {
	publisher Publisher
	observer  DropObserver
	timeout   time.Duration

	queue  chan BookingConfirmed
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(publisher Publisher, observer DropObserver, opts DispatcherOptions) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = 5 * time.Second
	}

	d := &Dispatcher{
		publisher: publisher,
		observer:  observer,
		timeout:   opts.PublishTimeout,
		queue:     make(chan BookingConfirmed, opts.QueueSize),
	}
	for i := 0; i < opts.Workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

func (d *Dispatcher) BookingConfirmed(b *booking.Booking) {
	if b == nil {
		return
	}
	event := NewBookingConfirmed(b)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		slog.Warn("notification dropped: dispatcher closed", "booking_id", event.BookingID.String())
		return
	}

	select {
	case d.queue <- event:
	default:
		if d.observer != nil {
			d.observer.NotificationDropped()
		}
		slog.Warn("notification dropped: queue full", "booking_id", event.BookingID.String())
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for event := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.publisher.Publish(ctx, event); err != nil {
			slog.Error("failed to publish booking notification",
				"booking_id", event.BookingID.String(),
				"error", err.Error())
		}
		cancel()
	}
}

// Close stops accepting events, drains what is queued and closes the publisher.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("notification queue not drained before shutdown", "pending", len(d.queue))
	}
	return d.publisher.Close()
}
