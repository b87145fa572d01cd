package scratch

import "container/heap"

// Node is a single frontier entry: a candidate cell id with its priority
// key F (= g + w*h) and the true cost-so-far G used for lazy-deletion at
// pop time. Seq breaks exact-F ties deterministically in insertion order
// (oldest entry wins), so heap iteration order is reproducible for a given
// input and build.
type Node struct {
	ID  int
	F   float64
	G   float64
	Seq uint64
}

// Frontier is a binary min-heap of Node ordered by ascending F (ties by
// Seq). It implements container/heap.Interface directly so callers use the
// standard heap.Push/heap.Pop functions; Frontier never deduplicates or
// decreases a key in place (lazy deletion: a pop whose G exceeds the
// caller's best known distance for that id is simply discarded by the
// caller before it is expanded).
type Frontier struct {
	nodes []Node
	seq   uint64
}

// NewFrontier returns an empty Frontier with capacity hint cap pre-sized to
// reduce reallocation for typical single-search workloads.
func NewFrontier(capHint int) *Frontier {
	return &Frontier{nodes: make([]Node, 0, capHint)}
}

// Reset empties the frontier while retaining its backing array's capacity,
// so repeated searches on the same planner do not reallocate the heap.
func (f *Frontier) Reset() {
	f.nodes = f.nodes[:0]
}

// Len implements container/heap.Interface.
func (f *Frontier) Len() int { return len(f.nodes) }

// Less implements container/heap.Interface: smaller F has higher priority;
// ties are broken by insertion order (smaller Seq first).
func (f *Frontier) Less(i, j int) bool {
	if f.nodes[i].F != f.nodes[j].F {
		return f.nodes[i].F < f.nodes[j].F
	}
	return f.nodes[i].Seq < f.nodes[j].Seq
}

// Swap implements container/heap.Interface.
func (f *Frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
}

// Push implements container/heap.Interface; call via heap.Push(f, ...), not
// directly.
func (f *Frontier) Push(x any) {
	f.nodes = append(f.nodes, x.(Node))
}

// Pop implements container/heap.Interface; call via heap.Pop(f), not
// directly.
func (f *Frontier) Pop() any {
	old := f.nodes
	n := len(old)
	item := old[n-1]
	f.nodes = old[:n-1]
	return item
}

// PushNode is the convenience entry point for producers: it stamps the node
// with the next insertion sequence number and pushes it via container/heap.
func (f *Frontier) PushNode(id int, priority, g float64) {
	f.seq++
	heap.Push(f, Node{ID: id, F: priority, G: g, Seq: f.seq})
}

// PopNode is the convenience entry point for consumers: it pops the
// highest-priority node via container/heap.
func (f *Frontier) PopNode() Node {
	return heap.Pop(f).(Node)
}
