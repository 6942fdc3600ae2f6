package archived

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func entry(i int) []byte {
	return []byte(fmt.Sprintf("entry-%d", i))
}

func TestJournalAccumulate(t *testing.T) {
	var m JournalMonoid
	a := NewJournal(entry(1), entry(2))
	b := NewJournal(entry(3))

	ab := m.Accumulate(a, b)
	require.Equal(t, [][]byte{entry(1), entry(2), entry(3)}, ab.Entries())
	require.Equal(t, 2, a.Len()) // inputs are untouched
	require.Equal(t, 1, b.Len())

	require.Equal(t, a.Digest(), m.Accumulate(a, m.Neutral()).Digest())
	require.Equal(t, a.Digest(), m.Accumulate(m.Neutral(), a).Digest())
	require.NotEqual(t, ab.Digest(), m.Accumulate(b, a).Digest())

	c := NewJournal(entry(4))
	require.Equal(t, m.Accumulate(m.Accumulate(a, b), c).Digest(), m.Accumulate(a, m.Accumulate(b, c)).Digest())
}

func TestJournalDigestBoundaries(t *testing.T) {
	joined := NewJournal([]byte("ab"), []byte("c"))
	split := NewJournal([]byte("a"), []byte("bc"))
	require.NotEqual(t, joined.Digest(), split.Digest())
	require.Equal(t, HASHSIZE, len(joined.Digest()))
	require.Equal(t, NewJournal().Digest(), Journal{}.Digest())
}

func TestJournalArchive(t *testing.T) {
	journal := NewJournalArchive(NewJournal(entry(0)))

	var versions []Version[Journal]
	for i := 1; i <= 20; i++ {
		versions = append(versions, journal.Current())
		journal.IncrementBy(NewJournal(entry(i)))
	}

	all := journal.Value()
	require.Equal(t, 21, all.Len())

	for _, i := range []int{10, 19, 0, 5, 15} {
		diff, err := DiffToCurrent(versions[i])
		require.NoError(t, err)

		var expected [][]byte
		for j := i + 1; j <= 20; j++ {
			expected = append(expected, entry(j))
		}
		require.Equal(t, expected, diff.Entries())
		require.Equal(t, NewJournal(expected...).Digest(), diff.Digest())
	}

	// entries handed out may be modified without affecting the archive
	entries := all.Entries()
	entries[0] = nil
	require.Equal(t, entry(0), journal.Value().Entries()[0])
}

func TestJournalOwnsEntrySlice(t *testing.T) {
	entries := [][]byte{entry(1), entry(2)}
	journal := NewJournalArchive(NewJournal())
	v := journal.Current()
	journal.IncrementBy(NewJournal(entries...))

	entries[0] = []byte("rewritten") // caller reuses its slice
	diff, err := DiffToCurrent(v)
	require.NoError(t, err)
	require.Equal(t, [][]byte{entry(1), entry(2)}, diff.Entries())
	require.Equal(t, [][]byte{entry(1), entry(2)}, journal.Value().Entries())
}
