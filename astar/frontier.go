package astar

import "container/heap"

// frontier is the open set's selection structure. Pop returns the node with the
// lowest Priority, the earliest pushed among ties.
type frontier interface {
	Len() int
	Push(n *SearchNode)
	Pop() *SearchNode
	Remove(n *SearchNode)
	Each(fn func(n *SearchNode))
}

func newFrontier(kind FrontierKind) frontier {
	if kind == FrontierLinear {
		return &linearFrontier{}
	}
	pq := make(nodePQ, 0, 16)

	return &heapFrontier{pq: pq}
}

// linearFrontier keeps nodes in insertion order and scans for the minimum.
type linearFrontier struct {
	nodes []*SearchNode
}

func (f *linearFrontier) Len() int { return len(f.nodes) }

func (f *linearFrontier) Push(n *SearchNode) { f.nodes = append(f.nodes, n) }

// Pop removes the first node of minimal priority. Strict < keeps the earliest tie.
func (f *linearFrontier) Pop() *SearchNode {
	if len(f.nodes) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(f.nodes); i++ {
		if f.nodes[i].Priority() < f.nodes[best].Priority() {
			best = i
		}
	}
	n := f.nodes[best]
	f.removeAt(best)

	return n
}

func (f *linearFrontier) Remove(n *SearchNode) {
	for i, m := range f.nodes {
		if m == n {
			f.removeAt(i)
			return
		}
	}
}

// removeAt deletes index i while preserving insertion order.
func (f *linearFrontier) removeAt(i int) {
	copy(f.nodes[i:], f.nodes[i+1:])
	f.nodes[len(f.nodes)-1] = nil
	f.nodes = f.nodes[:len(f.nodes)-1]
}

func (f *linearFrontier) Each(fn func(n *SearchNode)) {
	for _, n := range f.nodes {
		fn(n)
	}
}

// heapFrontier wraps nodePQ with container/heap.
type heapFrontier struct {
	pq nodePQ
}

func (f *heapFrontier) Len() int { return f.pq.Len() }

func (f *heapFrontier) Push(n *SearchNode) { heap.Push(&f.pq, n) }

func (f *heapFrontier) Pop() *SearchNode {
	if f.pq.Len() == 0 {
		return nil
	}

	return heap.Pop(&f.pq).(*SearchNode)
}

func (f *heapFrontier) Remove(n *SearchNode) {
	if n.index < 0 || n.index >= f.pq.Len() || f.pq[n.index] != n {
		return
	}
	heap.Remove(&f.pq, n.index)
}

func (f *heapFrontier) Each(fn func(n *SearchNode)) {
	for _, n := range f.pq {
		fn(n)
	}
}

// nodePQ is a min-heap of *SearchNode ordered by Priority, then by insertion
// sequence so that exact ties resolve exactly like the linear scan.
type nodePQ []*SearchNode

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by earlier insertion.
func (pq nodePQ) Less(i, j int) bool {
	pi, pj := pq[i].Priority(), pq[j].Priority()
	if pi != pj {
		return pi < pj
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their index fields current.
func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be a *SearchNode. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) {
	n := x.(*SearchNode)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
