package archived

import "sync"

// Locked serialises every call on an archive, reads included, through one mutex.
// Versions it returns belong to the wrapped archive and must be diffed through Diff.
type Locked[V any] struct {
	mu      sync.Mutex // guards archive
	archive *Archive[V]
}

func NewLocked[V any](a *Archive[V]) *Locked[V] {
	return &Locked[V]{archive: a}
}

func (l *Locked[V]) IncrementBy(delta V) Version[V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.archive.IncrementBy(delta)
}

func (l *Locked[V]) Value() V {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.archive.Value()
}

func (l *Locked[V]) Current() Version[V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.archive.Current()
}

func (l *Locked[V]) ClearHistory() Version[V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.archive.ClearHistory()
}

func (l *Locked[V]) Reset(value V) Version[V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.archive.Reset(value)
}

// Diff is DiffToCurrent under the lock, v must have been issued by this archive.
func (l *Locked[V]) Diff(v Version[V]) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v.archive != nil && v.archive != l.archive {
		var zero V
		return zero, ErrInvalidVersion
	}
	return DiffToCurrent(v)
}

func (l *Locked[V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.archive.Stats()
}
