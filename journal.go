package archived

import "hash"
import "encoding/binary"

import "golang.org/x/crypto/blake2s"

const HASHSIZE = blake2s.Size // journal digests are blake2s 256 bits

// Journal is an ordered list of opaque entries. Accumulating journals concatenates
// them, which is associative but not commutative, so a journal diffed from a version
// lists exactly the entries recorded after that version, oldest first.
// Journals are treated as immutable, entries must not be modified after recording.
type Journal struct {
	entries [][]byte
}

// NewJournal returns a journal holding entries in the given order.
// The entries slice is copied, the entries themselves are not.
func NewJournal(entries ...[]byte) Journal {
	if len(entries) == 0 {
		return Journal{}
	}
	return Journal{entries: append([][]byte(nil), entries...)}
}

func (j Journal) Len() int {
	return len(j.entries)
}

// Entries returns the entries, oldest first. The returned slice may be modified freely,
// the entries themselves may not.
func (j Journal) Entries() [][]byte {
	return append([][]byte(nil), j.entries...)
}

func hasher() hash.Hash {
	h, _ := blake2s.New256(nil) // never fails without a key
	return h
}

// Digest returns a checksum over all entries and their order.
// Two journals with equal digests hold the same entries in the same order.
func (j Journal) Digest() (digest [HASHSIZE]byte) {
	h := hasher()
	var buf [binary.MaxVarintLen64]byte
	for _, e := range j.entries {
		done := binary.PutUvarint(buf[:], uint64(len(e))) // length prefix keeps entry boundaries
		h.Write(buf[:done])
		h.Write(e)
	}
	h.Sum(digest[:0])
	return
}

// JournalMonoid implements Monoid[Journal].
type JournalMonoid struct{}

func (JournalMonoid) Neutral() Journal {
	return Journal{}
}

// Accumulate returns a new journal with acc's entries followed by delta's.
// Neither input is modified, new entries are never appended in place.
func (JournalMonoid) Accumulate(acc, delta Journal) Journal {
	if len(delta.entries) == 0 {
		return acc
	}
	if len(acc.entries) == 0 {
		return delta
	}
	entries := make([][]byte, 0, len(acc.entries)+len(delta.entries))
	entries = append(entries, acc.entries...)
	entries = append(entries, delta.entries...)
	return Journal{entries: entries}
}

// NewJournalArchive returns an archive of journals which starts out with initial.
func NewJournalArchive(initial Journal) *Archive[Journal] {
	return New[Journal](JournalMonoid{}, initial)
}
