package skyhop

// Scheduler holds deferred one-shot actions as explicit deadline entries
// checked once per tick. There are no engine timers: everything fires on
// the main tick, so an entry only needs a liveness check inside its action
// to be safe against entities destroyed before the deadline.
type Scheduler struct {
	entries []deadline
}

type deadline struct {
	dueTick int
	fire    func(g *Game)
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{entries: make([]deadline, 0, 8)}
}

// Reset drops all pending entries.
func (s *Scheduler) Reset() {
	s.entries = s.entries[:0]
}

// After schedules fire to run on the first tick >= dueTick.
func (s *Scheduler) After(dueTick int, fire func(g *Game)) {
	s.entries = append(s.entries, deadline{dueTick: dueTick, fire: fire})
}

// RunDue fires every entry whose deadline has passed and removes it.
func (s *Scheduler) RunDue(g *Game, tick int) {
	pending := s.entries[:0]
	for _, d := range s.entries {
		if tick >= d.dueTick {
			d.fire(g)
		} else {
			pending = append(pending, d)
		}
	}
	s.entries = pending
}

// Pending returns the number of scheduled entries (for tests).
func (s *Scheduler) Pending() int {
	return len(s.entries)
}
