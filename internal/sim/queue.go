package sim

// scheduled is one queue entry.
type scheduled struct {
	at    float64
	seq   uint64
	event *Event
}

// queue is a min-heap ordered by time, then sequence.
type queue []scheduled

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(scheduled)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduled{}
	*q = old[:n-1]
	return item
}
