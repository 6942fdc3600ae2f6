package archived

// commit is the unit of history, either the head (nothing recorded after it yet)
// or a delta which has been applied before its successor.
// delta of a regular commit starts as the increment recorded at creation time,
// collapse later widens it to cover everything up to the head.
type commit[V any] struct {
	kind  byte
	next  int // arena index of successor, noCOMMIT for head
	delta V
}

func (c *commit[V]) isHead() bool {
	return c.kind == headCOMMIT
}

// collapse folds the chain starting at commit i into commit i, so that afterwards
// commits[i].delta is the total change from i up to the head.
// Every commit on the path is rewired to point directly to the head, so later queries
// over overlapping ranges only pay for the part added since.
// The walk is iterative, histories which were never compressed can be arbitrarily long.
func (a *Archive[V]) collapse(i int) {
	path := a.path[:0]
	for c := i; !a.commits[c].isHead(); c = a.commits[c].next {
		path = append(path, c)
	}

	// last commit on the path already points to head and holds its own total
	if len(path) > 1 {
		for j := len(path) - 2; j >= 0; j-- {
			c, s := &a.commits[path[j]], &a.commits[path[j+1]]
			c.delta = a.monoid.Accumulate(c.delta, s.delta) // older first, newer folded in after
			c.next = s.next
		}
		a.collapses++
		a.hops += uint64(len(path) - 1)
	}
	a.path = path[:0]
}

// distance returns number of hops from commit i to head, without modifying anything
func (a *Archive[V]) distance(i int) (hops int) {
	for c := i; !a.commits[c].isHead(); c = a.commits[c].next {
		hops++
	}
	return
}
