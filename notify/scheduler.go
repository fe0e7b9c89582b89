package notify

import (
	"container/heap"
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"
)

const dispatchTick = time.Second

var ErrPastInstant = errors.New("cannot schedule an alert for a past instant")

// DeliverFunc receives the reminder id and text when its instant arrives.
type DeliverFunc func(id, text string)

// Scheduler is an in-process Notifier: pending alerts sit in a min-heap
// and a ticker loop fires them through the delivery callback when due.
type Scheduler struct {
	mu      sync.Mutex
	queue   *alertQueue
	clk     clock.Clock
	deliver DeliverFunc
}

func NewScheduler(deliver DeliverFunc) *Scheduler {
	return NewSchedulerWithClock(clock.New(), deliver)
}

func NewSchedulerWithClock(clk clock.Clock, deliver DeliverFunc) *Scheduler {
	if deliver == nil {
		deliver = func(id, text string) {
			log.Printf("notify: reminder %s due: %s", id, text)
		}
	}
	return &Scheduler{
		queue:   newAlertQueue(),
		clk:     clk,
		deliver: deliver,
	}
}

func (s *Scheduler) Schedule(id, text string, at time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if at.Before(s.clk.Now()) {
		return "", ErrPastInstant
	}

	a := &alert{
		id:     id,
		text:   text,
		handle: uuid.NewString(),
		at:     at,
	}
	heap.Push(s.queue, a)

	return a.handle, nil
}

func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.delete(id)
}

func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.deleteAll()
}

// Pending reports the number of live alerts.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue.alerts)
}

// Run drives dispatch until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(dispatchTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatchDue(s.clk.Now())
		}
	}
}

// dispatchDue fires every live alert whose instant has arrived. Delivery
// runs outside the lock so a slow callback can't stall scheduling.
func (s *Scheduler) dispatchDue(now time.Time) {
	var due []*alert

	s.mu.Lock()
	for {
		top := s.queue.peek()
		if top == nil || now.Before(top.at) {
			break
		}
		if popped, ok := heap.Pop(s.queue).(*alert); ok && popped != nil {
			due = append(due, popped)
		}
	}
	s.mu.Unlock()

	for _, a := range due {
		s.deliver(a.id, a.text)
	}
}
