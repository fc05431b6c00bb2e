package mailer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/notevault/internal/logging"
)

// ErrQueueFull is returned when the delivery queue has no room left.
var ErrQueueFull = errors.New("mail queue full")

// ErrQueueClosed is returned by Send after Close.
var ErrQueueClosed = errors.New("mail queue closed")

// DefaultSendTimeout bounds a single delivery attempt made by a Queue.
const DefaultSendTimeout = 30 * time.Second

// Queue hands messages to a background worker, so Send returns as soon as
// the message is accepted. Delivery errors are logged.
type Queue struct {
	next    Mailer
	log     logging.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	ch     chan Message
	done   chan struct{}
}

func NewQueue(next Mailer, size int, log logging.Logger) *Queue {
	q := &Queue{
		next:    next,
		log:     log.With("module", "mailer"),
		timeout: DefaultSendTimeout,
		ch:      make(chan Message, size),
		done:    make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for msg := range q.ch {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		if err := q.next.Send(ctx, msg); err != nil {
			q.log.Error(ctx, "mail delivery failed", "error", err)
		}
		cancel()
	}
}

func (q *Queue) Send(_ context.Context, msg Message) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting messages and waits for the queued ones to be sent.
func (q *Queue) Close() error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()
	<-q.done
	return nil
}
