package archived

import "golang.org/x/exp/constraints"

// Number is any built in type which can be added up.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is the additive monoid over a number type, zero being the neutral element.
type Sum[N Number] struct{}

func (Sum[N]) Neutral() N {
	return 0
}

func (Sum[N]) Accumulate(acc, delta N) N {
	return acc + delta
}

// NewSum returns an archive tracking a counter which starts at initial.
func NewSum[N Number](initial N) *Archive[N] {
	return New[N](Sum[N]{}, initial)
}
