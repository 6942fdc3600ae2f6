package archived

// Monoid is the contract an archived value type has to fulfil.
// Accumulate must be associative and Neutral must be its identity element.
// Commutativity is not required: Accumulate(acc, delta) is always called with
// acc being the older delta and delta the newer one, so chronological order is preserved.
type Monoid[V any] interface {
	Neutral() V
	Accumulate(acc, delta V) V
}

// MonoidFunc builds a Monoid from a neutral element and an accumulation function.
type MonoidFunc[V any] struct {
	Zero V
	Fold func(acc, delta V) V
}

func (m MonoidFunc[V]) Neutral() V {
	return m.Zero
}

func (m MonoidFunc[V]) Accumulate(acc, delta V) V {
	return m.Fold(acc, delta)
}
