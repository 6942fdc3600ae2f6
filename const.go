package archived

import "errors"

// commit kinds, a commit is either the head ( "now" ) or a recorded delta
const (
	headCOMMIT byte = iota
	deltaCOMMIT
)

const noCOMMIT = -1 // successor of the head, it has none

const initial_ARENA_CAPACITY = 64 // commits preallocated on construction and reset

var (
	ErrInvalidVersion = errors.New("version was not issued by an archive")
	ErrStaleVersion   = errors.New("version history was cleared")
)
