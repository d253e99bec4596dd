package gridpath

type nodeStatus uint8

const (
	statusUntouched nodeStatus = iota
	statusOpen
	statusClosed
)

func (s nodeStatus) String() string {
	switch s {
	case statusOpen:
		return "open"
	case statusClosed:
		return "closed"
	default:
		return "untouched"
	}
}

const noParent = -1

// node is the per-search bookkeeping record for one position. Parents are
// referenced by index into the owning nodeTable, never by pointer.
type node struct {
	position Position
	cost     float64
	costed   bool
	parent   int
	status   nodeStatus
}

// nodeTable is the arena of nodes discovered by one search.
type nodeTable struct {
	index map[Position]int
	nodes []node
}

func newNodeTable() *nodeTable {
	return &nodeTable{index: make(map[Position]int)}
}

// fetch returns the index of the node for pos, allocating an untouched node
// on first reference.
func (t *nodeTable) fetch(pos Position) int {
	if i, ok := t.index[pos]; ok {
		return i
	}
	i := len(t.nodes)
	t.nodes = append(t.nodes, node{position: pos, parent: noParent})
	t.index[pos] = i
	return i
}

func (t *nodeTable) at(i int) *node { return &t.nodes[i] }

func (t *nodeTable) len() int { return len(t.nodes) }
