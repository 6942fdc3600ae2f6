package archived

// Archive keeps track of a value which is updated incrementally.
// Versions taken from an archive are cheap to create and can later tell how much the
// value changed since they were taken, see DiffToCurrent.
//
// An Archive is not safe for concurrent use, not even for concurrent reads:
// Value and DiffToCurrent restructure the history (path compression) while being
// observationally pure. Use Locked if an archive must be shared between goroutines.
//
// The zero Archive is not usable, archives are created with New, NewSum or NewJournalArchive.
type Archive[V any] struct {
	monoid  Monoid[V]
	commits []commit[V] // arena, indexes are stable until next reset
	head    int
	anchor  int    // commit holding initial value, Value() is computed from it
	epoch   uint64 // bumped on every reset, versions from older epochs are stale

	path []int // scratch buffer used by collapse

	increments, resets uint64
	collapses, hops    uint64
}

// New creates an archive whose current value is initial.
func New[V any](m Monoid[V], initial V) *Archive[V] {
	a := &Archive[V]{monoid: m}
	a.reset(initial)
	return a
}

// IncrementBy applies delta to the value and returns a version representing the
// value after the increment. It never fails and costs O(1).
func (a *Archive[V]) IncrementBy(delta V) Version[V] {
	a.increments++
	return a.incrementby(delta)
}

// the current head becomes a regular commit carrying delta, a fresh head is installed after it
func (a *Archive[V]) incrementby(delta V) Version[V] {
	old_head := a.head
	a.head = a.newhead()
	a.commits[old_head] = commit[V]{kind: deltaCOMMIT, next: a.head, delta: delta}
	return a.version(a.head)
}

func (a *Archive[V]) newhead() int {
	a.commits = append(a.commits, commit[V]{kind: headCOMMIT, next: noCOMMIT, delta: a.monoid.Neutral()})
	return len(a.commits) - 1
}

func (a *Archive[V]) version(index int) Version[V] {
	return Version[V]{archive: a, index: index, epoch: a.epoch}
}

// Value returns the initial value with every increment since construction or the last
// reset folded in. Although a read, it compresses the history internally.
func (a *Archive[V]) Value() V {
	a.collapse(a.anchor)
	return a.commits[a.anchor].delta
}

// Current returns a version of the present, its diff stays neutral until next increment.
func (a *Archive[V]) Current() Version[V] {
	return a.version(a.head)
}

// ClearHistory discards all recorded commits but keeps the current value.
// All versions issued so far become stale.
func (a *Archive[V]) ClearHistory() Version[V] {
	return a.Reset(a.Value())
}

// Reset discards all recorded commits and overwrites the value with value.
// All versions issued so far become stale.
func (a *Archive[V]) Reset(value V) Version[V] {
	a.resets++
	return a.reset(value)
}

func (a *Archive[V]) reset(value V) Version[V] {
	a.commits = make([]commit[V], 0, initial_ARENA_CAPACITY) // old history is released, not reused
	a.path = nil
	a.epoch++

	a.head = a.newhead()
	a.anchor = a.head
	return a.incrementby(value)
}
