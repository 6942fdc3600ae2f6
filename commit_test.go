package archived

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// concat is associative but not commutative, any swap in accumulation order shows up
var concat = MonoidFunc[string]{Zero: "", Fold: func(acc, delta string) string { return acc + delta }}

func TestCollapseShortensChain(t *testing.T) {
	counter := NewSum(0)
	var versions []Version[int]
	for i := 0; i < 100; i++ {
		versions = append(versions, counter.IncrementBy(1))
	}
	require.Equal(t, 101, counter.distance(counter.anchor))

	require.Equal(t, 100, counter.Value())
	require.Equal(t, 1, counter.distance(counter.anchor))

	stats := counter.Stats()
	require.Equal(t, uint64(1), stats.Collapses)
	require.Equal(t, uint64(100), stats.Hops)

	// every commit the anchor walked over now points to head
	for _, v := range versions[:len(versions)-1] {
		require.Equal(t, 1, counter.distance(v.index))
	}

	// answering again needs no rewiring
	for i, v := range versions {
		diff, err := DiffToCurrent(v)
		require.NoError(t, err)
		require.Equal(t, 100-(i+1), diff)
	}
	require.Equal(t, stats.Collapses, counter.Stats().Collapses)
	require.Equal(t, stats.Hops, counter.Stats().Hops)
}

func TestCollapsePartialRange(t *testing.T) {
	counter := NewSum(0)
	var versions []Version[int]
	for i := 0; i < 10; i++ {
		versions = append(versions, counter.IncrementBy(1))
	}

	// compress the newer half first, then query from the beginning
	diff, err := DiffToCurrent(versions[5])
	require.NoError(t, err)
	require.Equal(t, 4, diff)
	require.Equal(t, 1, counter.distance(versions[5].index))
	require.Equal(t, 8, counter.distance(counter.anchor)) // commits up to versions[5] untouched, then one hop to head

	require.Equal(t, 10, counter.Value())
	require.Equal(t, uint64(3+7), counter.Stats().Hops)

	counter.IncrementBy(5) // new commits chain after the previously compressed head
	require.Equal(t, 2, counter.distance(versions[5].index))
	diff, err = DiffToCurrent(versions[5])
	require.NoError(t, err)
	require.Equal(t, 9, diff)
}

func TestCollapsePreservesOrder(t *testing.T) {
	letters := New[string](concat, ">")
	var versions []Version[string]
	for _, l := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		versions = append(versions, letters.Current())
		letters.IncrementBy(l)
	}

	// query in an order which compresses overlapping ranges in pieces
	for _, i := range []int{6, 3, 4, 0, 7, 1} {
		diff, err := DiffToCurrent(versions[i])
		require.NoError(t, err)
		require.Equal(t, "abcdefgh"[i:], diff)
	}
	require.Equal(t, ">abcdefgh", letters.Value())

	letters.IncrementBy("i")
	letters.IncrementBy("j")
	diff, err := DiffToCurrent(versions[2])
	require.NoError(t, err)
	require.Equal(t, "cdefghij", diff)
	require.Equal(t, ">abcdefghij", letters.Value())
}

func TestCollapseLongHistory(t *testing.T) {
	counter := NewSum(uint64(0))
	first := counter.Current()
	for i := 0; i < 1000000; i++ {
		counter.IncrementBy(1)
	}
	diff, err := DiffToCurrent(first)
	require.NoError(t, err)
	require.Equal(t, uint64(1000000), diff)
}
