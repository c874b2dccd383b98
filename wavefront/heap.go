package wavefront

// cellItem represents a grid cell and its candidate travel time from the
// source. It is stored in the priority queue to order cells by increasing
// time.
type cellItem struct {
	index int     // row-major cell index
	time  float64 // travel time from the source
}

// cellPQ is a min-heap (priority queue) of cellItem, ordered by time
// ascending. It follows the lazy-decrease-key approach: when a shorter time
// to a cell is found, a new item is pushed; the outdated entry remains but is
// discarded when popped because it exceeds the cell's recorded best.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller time → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].time < pq[j].time }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type cellItem.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop after it has swapped the minimum to the end.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
