// Package pqueue provides a binary min-heap keyed by integer ids with
// lazy deletion.
//
// The queue supports decrease-key without a native decrease-key heap:
// [Queue.Update] records the new authoritative key and pushes a fresh
// entry, leaving the old entry in place. [Queue.Pop] discards entries
// whose key no longer matches the authoritative key for their id, as
// well as entries for ids that were already popped. This trades extra
// heap churn for a much simpler structure, which practical studies of
// Dijkstra-style workloads show to be the better deal at this scale.
//
// The queue is not safe for concurrent use.
package pqueue

import "container/heap"

// Key orders queue entries. Keys are compared lexicographically:
// Rank first, then Seq, then ID. Rank typically carries a distance or
// cost; Seq carries a deterministic tie-break such as discovery order.
type Key struct {
	Rank int64
	Seq  int64
}

// less reports whether k orders strictly before other, using id as the
// final tie-break so that ordering is total and deterministic.
func (k Key) less(other Key, id, otherID int) bool {
	if k.Rank != other.Rank {
		return k.Rank < other.Rank
	}
	if k.Seq != other.Seq {
		return k.Seq < other.Seq
	}
	return id < otherID
}

// Queue is a min-priority queue of integer ids with lazy deletion.
// The zero value is not usable - use New.
type Queue struct {
	entries entryHeap
	current map[int]Key // authoritative key per live id
}

// New creates an empty queue with capacity hint n.
func New(n int) *Queue {
	return &Queue{
		entries: make(entryHeap, 0, n),
		current: make(map[int]Key, n),
	}
}

// Len returns the number of ids currently in the queue.
// Stale entries do not count.
func (q *Queue) Len() int { return len(q.current) }

// Push inserts id with the given key. If id is already present the
// call behaves like [Queue.Update].
func (q *Queue) Push(id int, key Key) {
	q.current[id] = key
	heap.Push(&q.entries, entry{id: id, key: key})
}

// Update changes the key of a previously pushed id. The old heap entry
// is not removed; it becomes stale and is skipped on Pop. Updating an
// id that is not in the queue inserts it.
func (q *Queue) Update(id int, key Key) {
	q.current[id] = key
	heap.Push(&q.entries, entry{id: id, key: key})
}

// Pop removes and returns the id with the smallest key. The boolean is
// false when the queue is empty. Stale entries (superseded keys and
// already-popped ids) are filtered out before a result is returned.
func (q *Queue) Pop() (int, Key, bool) {
	for len(q.entries) > 0 {
		e := heap.Pop(&q.entries).(entry)
		key, live := q.current[e.id]
		if !live || key != e.key {
			continue // stale entry left behind by Update or an earlier Pop
		}
		delete(q.current, e.id)
		return e.id, e.key, true
	}
	return 0, Key{}, false
}

type entry struct {
	id  int
	key Key
}

type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	return h[i].key.less(h[j].key, h[i].id, h[j].id)
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
