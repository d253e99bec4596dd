package gridpath

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Position
	Open      map[Position]bool
	Closed    map[Position]bool
	CameFrom  map[Position]Position
	Done      bool
	Found     bool
	Path      []Position
	StepIndex int
}

// Stepper drives the A* engine one iteration at a time. Running it until a
// snapshot reports Done yields the same path as AStar.Find.
type Stepper struct {
	search    *search
	stepCount int
}

// NewStepper creates a stepper for a single search from origin to target.
func NewStepper(oracle Oracle, heuristic Heuristic, origin Position, target Position) *Stepper {
	return &Stepper{search: newSearch(oracle, heuristic, origin, target, 0)}
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.search.done }

// Result returns the outcome so far. Path is empty until the search is done.
func (s *Stepper) Result() Result { return s.search.result() }

// Step advances the search by one iteration and returns a snapshot. Once the
// search is done further calls return the final snapshot again.
func (s *Stepper) Step() StepSnapshot {
	if !s.search.done {
		s.stepCount++
		s.search.step()
	}
	return s.snapshot()
}

func (s *Stepper) snapshot() StepSnapshot {
	nodes := s.search.nodes
	snapshot := StepSnapshot{
		Current:   s.search.current,
		Open:      make(map[Position]bool, s.search.open.len()),
		Closed:    make(map[Position]bool),
		CameFrom:  make(map[Position]Position),
		Done:      s.search.done,
		Found:     s.search.found,
		StepIndex: s.stepCount,
	}
	for i := range nodes.len() {
		n := nodes.at(i)
		switch n.status {
		case statusOpen:
			snapshot.Open[n.position] = true
		case statusClosed:
			snapshot.Closed[n.position] = true
		}
		if n.parent != noParent {
			snapshot.CameFrom[n.position] = nodes.at(n.parent).position
		}
	}
	if snapshot.Found {
		snapshot.Path = s.search.path()
	}
	return snapshot
}
