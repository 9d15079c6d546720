package loser

// Source yields successive elements of one sorted input, reporting
// false once exhausted.
type Source[E any] func() (E, bool)

// Tree merges sorted sources into one sorted pull sequence.
//
// Nodes are laid out so that nodes N and N+1 share parent N/2. The M
// leaves sit at positions M..2M-1 and the M-1 internal nodes at 1..M-1.
// Node 0 holds the current winner.
type Tree[E any] struct {
	nodes   []node[E]
	sources []Source[E]
	less    func(a, b E) bool
	primed  bool
}

type node[E any] struct {
	index int       // leaf position of the loser (winner for node 0)
	value E         // loser's value (winner's for node 0)
	ok    bool      // false once the recorded source is exhausted
	next  Source[E] // leaf nodes only
}

// New builds a tree over the given sources. less must agree with the
// order each source yields its elements in.
func New[E any](sources []Source[E], less func(a, b E) bool) *Tree[E] {
	return &Tree[E]{
		nodes:   make([]node[E], len(sources)*2),
		sources: sources,
		less:    less,
	}
}

// Next returns the smallest element not yet produced across all
// sources. Equal elements from different sources are returned in an
// unspecified relative order.
func (t *Tree[E]) Next() (E, bool) {
	var zero E
	if len(t.sources) == 0 {
		return zero, false
	}
	if !t.primed {
		t.prime()
	} else {
		prev := t.nodes[0].index
		t.moveNext(prev)
		t.replayGames(prev)
	}
	root := &t.nodes[0]
	if !root.ok {
		return zero, false
	}
	return root.value, true
}

func (t *Tree[E]) prime() {
	for i, src := range t.sources {
		leaf := i + len(t.sources)
		t.nodes[leaf].index = leaf
		t.nodes[leaf].next = src
		t.moveNext(leaf)
	}
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
	t.nodes[0].ok = t.nodes[winner].ok
	t.primed = true
}

// moveNext pulls the next element into the leaf at pos.
func (t *Tree[E]) moveNext(pos int) {
	n := &t.nodes[pos]
	if v, ok := n.next(); ok {
		n.value = v
		n.ok = true
		return
	}
	var zero E
	n.value = zero
	n.ok = false
}

// playGame finds the winner of the subtree at pos, recording losers in
// the internal nodes on the way.
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	winner, loser := right, left
	if t.beats(left, right) {
		winner, loser = left, right
	}
	t.nodes[pos].index = loser
	t.nodes[pos].value = t.nodes[loser].value
	t.nodes[pos].ok = t.nodes[loser].ok
	return winner
}

// beats reports whether the leaf at i wins against the leaf at j. An
// exhausted leaf always loses.
func (t *Tree[E]) beats(i, j int) bool {
	a, b := &t.nodes[i], &t.nodes[j]
	if !a.ok {
		return false
	}
	if !b.ok {
		return true
	}
	return t.less(a.value, b.value)
}

// replayGames re-runs the contests on the path from pos to the root
// after the leaf at pos has advanced.
func (t *Tree[E]) replayGames(pos int) {
	winVal, winOK := t.nodes[pos].value, t.nodes[pos].ok
	for n := parent(pos); n != 0; n = parent(n) {
		nd := &t.nodes[n]
		loserWins := nd.ok && (!winOK || t.less(nd.value, winVal))
		if loserWins {
			nd.index, pos = pos, nd.index
			nd.value, winVal = winVal, nd.value
			nd.ok, winOK = winOK, nd.ok
		}
	}
	t.nodes[0].index = pos
	t.nodes[0].value = winVal
	t.nodes[0].ok = winOK
}

func parent(i int) int { return i >> 1 }
