package notify

import (
	"container/heap"
	"time"
)

type alert struct {
	id     string // reminder id
	text   string
	handle string
	at     time.Time
}

// alertQueue is a min-heap on the alert instant. The map holds the live
// alert per reminder id; Cancel and replacement just drop the map entry,
// and stale heap entries are skipped when they surface.
type alertQueue struct {
	backingArray []*alert
	alerts       map[string]*alert
}

func newAlertQueue() *alertQueue {
	q := &alertQueue{
		backingArray: []*alert{},
		alerts:       make(map[string]*alert),
	}
	heap.Init(q)
	return q
}

func (q alertQueue) Len() int {
	return len(q.backingArray)
}

func (q alertQueue) Less(i, j int) bool {
	return q.backingArray[i].at.Before(q.backingArray[j].at)
}

func (q alertQueue) Swap(i, j int) {
	q.backingArray[j], q.backingArray[i] = q.backingArray[i], q.backingArray[j]
}

func (q *alertQueue) Push(x any) {
	a, ok := x.(*alert)
	if !ok {
		return
	}

	q.alerts[a.id] = a
	q.backingArray = append(q.backingArray, a)
}

func (q *alertQueue) Pop() any {
	if len(q.backingArray) == 0 {
		return nil
	}

	ba := q.backingArray
	n := len(ba)
	q.backingArray = ba[:n-1]
	popped := ba[n-1]

	// A heap entry is live only while the map still points at it;
	// cancelled or replaced alerts surface here as nil.
	if live, ok := q.alerts[popped.id]; ok && live == popped {
		delete(q.alerts, popped.id)
		return popped
	}
	return nil
}

func (q *alertQueue) delete(id string) {
	delete(q.alerts, id)
}

func (q *alertQueue) deleteAll() {
	q.alerts = make(map[string]*alert)
	q.backingArray = q.backingArray[:0]
}

// peek returns the earliest live alert without removing it, discarding
// any stale entries sitting on top of the heap.
func (q *alertQueue) peek() *alert {
	for len(q.backingArray) > 0 {
		top := q.backingArray[0]
		if live, ok := q.alerts[top.id]; ok && live == top {
			return top
		}
		heap.Pop(q)
	}
	return nil
}
