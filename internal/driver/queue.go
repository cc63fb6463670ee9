package driver

import (
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

// Scheduled is an action due at a fixed offset from the start of the stream.
type Scheduled struct {
	At     time.Duration
	Seq    int // Insertion order, breaks ties between equal times
	Action game.Action
}

// eventQueue is a min-heap of scheduled actions, implementing heap.Interface.
type eventQueue []Scheduled

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].At != q[j].At {
		return q[i].At < q[j].At
	}
	return q[i].Seq < q[j].Seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) {
	*q = append(*q, x.(Scheduled))
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
