package priority

// entry is one element of the queue, tracked both by heap position and
// by key.
type entry[K comparable, V any] struct {
	key   K
	value V
	pos   int
}

// Queue is a keyed binary min-queue. At most one entry exists per key;
// Set on a present key updates its value and restores heap order.
type Queue[K comparable, V any] struct {
	heap  []*entry[K, V]
	byKey map[K]*entry[K, V]
	less  func(a, b V) bool
}

// NewQueue creates an empty queue ordered by the given comparison
// function. less should return true when a sorts before b.
func NewQueue[K comparable, V any](less func(a, b V) bool) *Queue[K, V] {
	return &Queue[K, V]{
		byKey: make(map[K]*entry[K, V]),
		less:  less,
	}
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.heap)
}

// Contains reports whether the key currently has an entry.
func (q *Queue[K, V]) Contains(key K) bool {
	_, ok := q.byKey[key]
	return ok
}

// Set inserts the key with the given value, or updates the value of an
// existing entry and moves it to its new position.
func (q *Queue[K, V]) Set(key K, value V) {
	if e, ok := q.byKey[key]; ok {
		e.value = value
		q.siftUp(e.pos)
		q.siftDown(e.pos)
		return
	}
	e := &entry[K, V]{key: key, value: value, pos: len(q.heap)}
	q.heap = append(q.heap, e)
	q.byKey[key] = e
	q.siftUp(e.pos)
}

// Peek returns the minimum entry without removing it.
func (q *Queue[K, V]) Peek() (key K, value V, ok bool) {
	if len(q.heap) == 0 {
		return key, value, false
	}
	e := q.heap[0]
	return e.key, e.value, true
}

// Pop removes and returns the minimum entry.
func (q *Queue[K, V]) Pop() (key K, value V, ok bool) {
	if len(q.heap) == 0 {
		return key, value, false
	}
	e := q.heap[0]
	q.removeAt(0)
	return e.key, e.value, true
}

// Remove deletes the entry for the key, reporting whether it was
// present.
func (q *Queue[K, V]) Remove(key K) bool {
	e, ok := q.byKey[key]
	if !ok {
		return false
	}
	q.removeAt(e.pos)
	return true
}

func (q *Queue[K, V]) removeAt(i int) {
	e := q.heap[i]
	last := len(q.heap) - 1
	if i != last {
		q.swap(i, last)
	}
	q.heap = q.heap[:last]
	delete(q.byKey, e.key)
	if i < last {
		q.siftDown(i)
		q.siftUp(i)
	}
}

func (q *Queue[K, V]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heap[i].pos = i
	q.heap[j].pos = j
}

func (q *Queue[K, V]) lessAt(i, j int) bool {
	return q.less(q.heap[i].value, q.heap[j].value)
}

func (q *Queue[K, V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.lessAt(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[K, V]) siftDown(i int) {
	for {
		min := i
		if l := 2*i + 1; l < len(q.heap) && q.lessAt(l, min) {
			min = l
		}
		if r := 2*i + 2; r < len(q.heap) && q.lessAt(r, min) {
			min = r
		}
		if min == i {
			return
		}
		q.swap(i, min)
		i = min
	}
}
