// Copyright dero developers

/*
Package archived tracks an incrementally updated value and hands out cheap versions
(snapshots) of it, which can later answer "how much has the value changed since this
version was taken ?" without storing a copy of the value at snapshot time.

	An Archive
		1) records every increment as a commit, creating a version is O(1)
		2) answers diffs by folding commits from the version up to the head
		3) compresses the folded path (like union-find path compression), so repeated
		   queries over overlapping ranges are amortized cheap
		4) supports any associative payload with a neutral element, commutativity is not needed

Eg. Minimal code, counting and asking for the change since a version
	counter := archived.NewSum[int64](13)     // value is 13
	v := counter.IncrementBy(3)               // value is 16, v remembers this point
	counter.IncrementBy(4)                    // value is 20
	diff, _ := archived.DiffToCurrent(v)      // diff is 4

History is kept until ClearHistory or Reset is called, which invalidate every version
issued earlier. Using such a version reports ErrStaleVersion instead of undefined behaviour.

Archives are not safe for concurrent use, even reads modify internal structure.
Wrap them in Locked to share them, the metrics package exports their Stats to prometheus.
*/
package archived
