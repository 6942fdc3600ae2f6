package archived

import "golang.org/x/xerrors"

// Version is a snapshot handle of an archive, taken at some point in time.
// It does not own anything, it merely refers to a commit of its archive.
// The zero Version is invalid. A version becomes stale once its archive executes
// ClearHistory or Reset, there is no way to make it valid again.
type Version[V any] struct {
	archive *Archive[V]
	index   int
	epoch   uint64
}

// Valid reports whether the version can still be used with DiffToCurrent.
func (v Version[V]) Valid() bool {
	return v.archive != nil && v.epoch == v.archive.epoch
}

// DiffToCurrent returns the accumulated increments applied to the version's archive
// since the version was created.
// Calling it repeatedly without intervening increments returns the same value, though
// each call may compress the archive's history.
//
// Stale or zero versions are reported as ErrStaleVersion or ErrInvalidVersion.
func DiffToCurrent[V any](v Version[V]) (diff V, err error) {
	a := v.archive
	if a == nil {
		return diff, ErrInvalidVersion
	}
	if v.epoch != a.epoch || v.index >= len(a.commits) {
		return diff, xerrors.Errorf("%w: version epoch %d, archive epoch %d", ErrStaleVersion, v.epoch, a.epoch)
	}

	a.collapse(v.index)
	return a.commits[v.index].delta, nil
}
