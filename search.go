package gridpath

import "github.com/pdrpinto/gridpath/internal"

// search is the state of one A* invocation. It is never shared between calls.
type search struct {
	oracle    Oracle
	heuristic Heuristic
	origin    Position
	target    Position
	limit     int

	nodes       *nodeTable
	open        *openSet
	originIndex int
	targetIndex int

	current  Position
	expanded int
	done     bool
	found    bool
	limited  bool
}

func newSearch(oracle Oracle, heuristic Heuristic, origin, target Position, limit int) *search {
	nodes := newNodeTable()
	s := &search{
		oracle:    oracle,
		heuristic: heuristic,
		origin:    origin,
		target:    target,
		limit:     limit,
		nodes:     nodes,
		open:      newOpenSet(nodes),
		current:   origin,
	}

	s.originIndex = nodes.fetch(origin)
	start := nodes.at(s.originIndex)
	start.cost = 0
	start.costed = true
	s.open.push(s.originIndex, heuristic(origin, target))

	s.targetIndex = nodes.fetch(target)
	return s
}

// step runs one iteration of the expansion loop and reports whether the
// search has finished.
func (s *search) step() bool {
	if s.done {
		return true
	}
	if s.open.len() == 0 {
		s.done = true
		return true
	}

	active, ok := s.open.popCheapest()
	if !ok {
		s.done = true
		return true
	}
	activeNode := *s.nodes.at(active)
	s.current = activeNode.position

	if activeNode.position == s.target {
		s.done = true
		s.found = true
		return true
	}
	if s.limit > 0 && s.expanded >= s.limit {
		s.done = true
		s.limited = true
		return true
	}

	s.open.close(active)
	s.expanded++

	for _, next := range activeNode.position.Neighbors() {
		if !s.oracle.Traversable(next) {
			continue
		}
		s.relax(active, activeNode, s.nodes.fetch(next))
	}
	return false
}

// relax offers node i a route through active. Closed nodes are final and are
// never reopened.
func (s *search) relax(active int, activeNode node, i int) {
	n := s.nodes.at(i)
	if n.status == statusClosed {
		return
	}
	tentative := activeNode.cost + s.heuristic(activeNode.position, n.position)
	if n.costed && tentative >= n.cost {
		return
	}
	n.cost = tentative
	n.costed = true
	n.parent = active
	s.open.push(i, tentative+s.heuristic(n.position, s.target))
}

// path rebuilds the route to the target from parent links.
func (s *search) path() []Position {
	if !s.found {
		return nil
	}
	indices := internal.ReconstructPath(func(i int) (int, bool) {
		parent := s.nodes.at(i).parent
		return parent, parent != noParent
	}, s.targetIndex, s.originIndex)
	if len(indices) == 0 {
		return nil
	}
	path := make([]Position, len(indices))
	for k, i := range indices {
		path[k] = s.nodes.at(i).position
	}
	return path
}

func (s *search) result() Result {
	result := Result{Expanded: s.expanded, Found: s.found}
	if s.found {
		result.Path = s.path()
		result.Cost = s.nodes.at(s.targetIndex).cost
	}
	return result
}

func (s *search) outcome() string {
	switch {
	case s.found && s.origin == s.target:
		return OutcomeTrivial
	case s.found:
		return OutcomeFound
	case s.limited:
		return OutcomeLimit
	default:
		return OutcomeUnreachable
	}
}
