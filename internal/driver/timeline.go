package driver

import (
	"container/heap"
	"math"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

// Timeline holds the chart derived actions that are not yet due.
type Timeline struct {
	queue eventQueue
	seq   int
}

// NewTimeline schedules the whole chart:
//   - the song end marker, due immediately
//   - a CreateNote for every user played note, early enough to reach the hit line on time
//   - a PlayBackgroundNote for every other note, at its start
func NewTimeline(chart *game.Chart, p game.Params) *Timeline {
	t := &Timeline{}
	if last, ok := chart.Last(); ok {
		t.Schedule(0, game.LastTime(last.End*p.TicksPerSecond()))
	}

	lead := p.TimeToImpact()
	for _, n := range chart.Notes {
		if n.UserPlayed {
			t.Schedule(seconds(n.Start-lead), game.CreateNote(n))
		} else {
			t.Schedule(seconds(n.Start), game.PlayBackgroundNote(n))
		}
	}
	return t
}

// seconds converts a song time to a stream offset, times before the start
// of the stream are due immediately.
func seconds(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(math.Round(s * float64(time.Second)))
}

func (t *Timeline) Schedule(at time.Duration, a game.Action) {
	heap.Push(&t.queue, Scheduled{At: at, Seq: t.seq, Action: a})
	t.seq++
}

func (t *Timeline) Len() int {
	return t.queue.Len()
}

// Next returns when the earliest pending action is due.
func (t *Timeline) Next() (time.Duration, bool) {
	if t.queue.Len() == 0 {
		return 0, false
	}
	return t.queue[0].At, true
}

// PopDue removes and returns the earliest action if it is due at or before at.
func (t *Timeline) PopDue(at time.Duration) (Scheduled, bool) {
	if next, ok := t.Next(); !ok || next > at {
		return Scheduled{}, false
	}
	return heap.Pop(&t.queue).(Scheduled), true
}

// Clone copies the pending actions so the same chart can be folded again.
func (t *Timeline) Clone() *Timeline {
	q := make(eventQueue, len(t.queue))
	copy(q, t.queue)
	return &Timeline{queue: q, seq: t.seq}
}
