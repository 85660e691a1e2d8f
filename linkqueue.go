package clustering

import "container/heap"

// Link is an unordered pair of nodes and the normalized distance between
// them. Immutable once created; the universe of links is the complete
// graph over all node pairs, each created exactly once.
type Link struct {
	A, B     int
	Distance float64
}

// linkQueue is a binary min-heap of links keyed by distance. Ties are
// broken arbitrarily; callers must not rely on the relative order of
// equal-distance links.
type linkQueue []Link

func (q linkQueue) Len() int            { return len(q) }
func (q linkQueue) Less(i, j int) bool  { return q[i].Distance < q[j].Distance }
func (q linkQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *linkQueue) Push(x any) { *q = append(*q, x.(Link)) }

func (q *linkQueue) Pop() any {
	old := *q
	n := len(old)
	link := old[n-1]
	*q = old[:n-1]
	return link
}

// newLinkQueue enumerates all n(n-1)/2 unordered node pairs and heapifies
// them by normalized distance.
func newLinkQueue(scores *ScoreMatrix) *linkQueue {
	n := scores.Dim()
	q := make(linkQueue, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			q = append(q, Link{A: i, B: j, Distance: scores.At(i, j)})
		}
	}
	heap.Init(&q)
	return &q
}

// next removes and returns the minimum-distance link.
func (q *linkQueue) next() Link {
	return heap.Pop(q).(Link)
}
