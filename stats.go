package archived

// Stats is a point in time summary of an archive's internal structure.
type Stats struct {
	Commits    int    // commits in the arena, including ones compression made unreachable
	Epoch      uint64 // number of resets including construction
	Increments uint64
	Resets     uint64 // Reset and ClearHistory calls
	Collapses  uint64 // compressions which rewired at least one commit
	Hops       uint64 // commits skipped over by all compressions
}

func (a *Archive[V]) Stats() Stats {
	return Stats{
		Commits:    len(a.commits),
		Epoch:      a.epoch,
		Increments: a.increments,
		Resets:     a.resets,
		Collapses:  a.collapses,
		Hops:       a.hops,
	}
}
