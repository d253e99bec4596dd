package gridpath

import "container/heap"

type queueEntry struct {
	node int
	cost float64
	f    float64
	seq  uint64
}

// priorityQueue is a min-heap ordered by f, ties broken by insertion order.
// It may hold stale entries; see openSet.popCheapest.
type priorityQueue []queueEntry

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].f != queue[j].f {
		return queue[i].f < queue[j].f
	}
	return queue[i].seq < queue[j].seq
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(queueEntry))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// openSet pairs an O(1) membership set with a lazily cleaned priority queue
// over the same nodes. Relaxing a node pushes a fresh entry instead of fixing
// the old one in place; the old entry is discarded when it surfaces.
type openSet struct {
	table   *nodeTable
	members map[int]struct{}
	queue   priorityQueue
	seq     uint64
}

func newOpenSet(table *nodeTable) *openSet {
	return &openSet{table: table, members: make(map[int]struct{})}
}

func (o *openSet) len() int { return len(o.members) }

func (o *openSet) contains(i int) bool {
	_, ok := o.members[i]
	return ok
}

// push marks node i open and queues it under key f.
func (o *openSet) push(i int, f float64) {
	n := o.table.at(i)
	n.status = statusOpen
	o.members[i] = struct{}{}
	heap.Push(&o.queue, queueEntry{node: i, cost: n.cost, f: f, seq: o.seq})
	o.seq++
}

// close marks node i closed and drops it from the membership set. Its queue
// entries become stale.
func (o *openSet) close(i int) {
	o.table.at(i).status = statusClosed
	delete(o.members, i)
}

// popCheapest returns the open node with the smallest key, discarding stale
// entries on the way. It reports false when the queue is exhausted.
func (o *openSet) popCheapest() (int, bool) {
	for o.queue.Len() > 0 {
		entry := heap.Pop(&o.queue).(queueEntry)
		n := o.table.at(entry.node)
		if n.status != statusOpen || n.cost != entry.cost {
			continue
		}
		return entry.node, true
	}
	return noParent, false
}
