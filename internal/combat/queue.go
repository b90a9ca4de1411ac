package combat

import (
	"container/heap"

	"heroes_ai/internal/army"
)

// turnRef is a unit's slot in one round's turn order.
type turnRef struct {
	unit   *army.Unit
	attack int
	seq    int
	index  int // heap index
}

// turnHeap pops the strongest attacker first; equal attack goes to the earlier roster slot.
type turnHeap []*turnRef

func (h turnHeap) Len() int { return len(h) }
func (h turnHeap) Less(i, j int) bool {
	if h[i].attack != h[j].attack {
		return h[i].attack > h[j].attack
	}
	return h[i].seq < h[j].seq
}
func (h turnHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *turnHeap) Push(x any) { r := x.(*turnRef); r.index = len(*h); *h = append(*h, r) }
func (h *turnHeap) Pop() any {
	old := *h
	r := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	r.index = -1
	return r
}

// turnQueue is one side's pending turns for a round, indexed by unit so a unit killed
// before acting can be dropped in O(log n).
type turnQueue struct {
	h      turnHeap
	byUnit map[*army.Unit]*turnRef
}

func newTurnQueue(a *army.Army) *turnQueue {
	q := &turnQueue{byUnit: map[*army.Unit]*turnRef{}}
	if a == nil {
		return q
	}
	seq := 0
	for _, u := range a.Units {
		if !u.IsAlive() {
			continue
		}
		if _, dup := q.byUnit[u]; dup {
			continue
		}
		ref := &turnRef{unit: u, attack: u.BaseAttack, seq: seq, index: len(q.h)}
		seq++
		q.h = append(q.h, ref)
		q.byUnit[u] = ref
	}
	heap.Init(&q.h)
	return q
}

func (q *turnQueue) Len() int { return q.h.Len() }

// topAttack reports the attack of the next unit to act.
func (q *turnQueue) topAttack() (int, bool) {
	if q.h.Len() == 0 {
		return 0, false
	}
	return q.h[0].attack, true
}

func (q *turnQueue) pop() *army.Unit {
	if q.h.Len() == 0 {
		return nil
	}
	ref := heap.Pop(&q.h).(*turnRef)
	delete(q.byUnit, ref.unit)
	return ref.unit
}

// remove drops u if it has not acted yet this round.
func (q *turnQueue) remove(u *army.Unit) bool {
	ref, ok := q.byUnit[u]
	if !ok {
		return false
	}
	heap.Remove(&q.h, ref.index)
	delete(q.byUnit, u)
	return true
}
