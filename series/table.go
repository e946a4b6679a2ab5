package series

import (
	"math"
	"math/bits"

	"github.com/meganmergo/piranha/monomial"
)

// Slot states for the open-addressed table. A tombstone marks a slot whose
// entry was evicted after a merge produced zero; probes continue past it,
// inserts may reuse it.
const (
	slotEmpty uint8 = iota
	slotOccupied
	slotTombstone
)

// minTableCapacity is the smallest bucket count a table is created with.
// Eight slots keep the first resizes away from the hot path for the tiny
// series that dominate test workloads.
const minTableCapacity = 8

// DefaultMaxLoadFactor is the load threshold past which the table doubles
// its bucket count. Tombstones count toward load so probe chains stay
// bounded even under heavy cancellation churn. 0.5 trades memory for short
// chains, which matters because every term-pair product probes this table.
const DefaultMaxLoadFactor = 0.5

type slot struct {
	state uint8
	hash  uint64
	term  Term
}

// Table is the open-addressed hash table that physically stores the terms
// of a series and backs the multiplier's accumulators. The bucket count is
// always a power of two; the bucket index is the low bits of the monomial
// hash; probing is linear (+1 modulo capacity).
//
// Insert merges on key collision through the coefficient's AddInPlace and
// evicts the entry immediately when the merge yields zero, so every stored
// coefficient is non-zero at all observer-visible moments.
//
// Table is not safe for concurrent mutation. The multiplier gives each
// worker a private table and merges single-threaded.
type Table struct {
	slots      []slot
	mask       uint64
	occupied   int
	tombstones int
	maxLoad    float64
}

// NewTable creates a table with room for at least capacity entries under
// the given load factor. A maxLoad of zero or less selects
// DefaultMaxLoadFactor.
func NewTable(capacity int, maxLoad float64) *Table {
	if maxLoad <= 0 || maxLoad >= 1 {
		maxLoad = DefaultMaxLoadFactor
	}
	buckets := bucketCountFor(capacity, maxLoad)
	return &Table{
		slots:   make([]slot, buckets),
		mask:    uint64(buckets - 1),
		maxLoad: maxLoad,
	}
}

// BucketCount returns the smallest power-of-two bucket count that holds n
// entries under the given load factor. The multiplier uses it to fix the
// shared output capacity before partitioning the bucket space into bands.
func BucketCount(n int, maxLoad float64) int {
	if maxLoad <= 0 || maxLoad >= 1 {
		maxLoad = DefaultMaxLoadFactor
	}
	return bucketCountFor(n, maxLoad)
}

// bucketCountFor returns the smallest power-of-two bucket count that holds
// n entries under the given load factor.
func bucketCountFor(n int, maxLoad float64) int {
	if n < 1 {
		n = 1
	}
	need := int(math.Ceil(float64(n) / maxLoad))
	if need < minTableCapacity {
		need = minTableCapacity
	}
	return 1 << bits.Len(uint(need-1))
}

// Len returns the number of stored terms.
func (t *Table) Len() int {
	return t.occupied
}

// Capacity returns the current bucket count.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// Mask returns the bucket mask (Capacity-1). The multiplier's hash-band
// partitioner classifies product monomials with hash & Mask of the shared
// output capacity.
func (t *Table) Mask() uint64 {
	return t.mask
}

// Insert adds a term, merging into an existing entry when the monomial is
// already present and evicting the entry if the merge yields zero. Inserting
// a term whose coefficient is already zero is a no-op, preserving the
// non-zero invariant. The table takes ownership of the term's coefficient.
//
// Parameters:
//   - term: The term to insert or merge.
//
// Returns:
//   - error: A coefficient error if the in-place addition failed.
func (t *Table) Insert(term Term) error {
	return t.InsertHashed(term.Monomial.Hash(), term)
}

// InsertHashed is Insert with a precomputed monomial hash, letting callers
// that already hashed the key (the kernels classify products by hash before
// depositing) avoid hashing twice.
func (t *Table) InsertHashed(hash uint64, term Term) error {
	if term.Coefficient.IsZero() {
		return nil
	}
	i := hash & t.mask
	firstTombstone := -1
	for {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			target := i
			if firstTombstone >= 0 {
				target = uint64(firstTombstone)
				t.tombstones--
			}
			t.slots[target] = slot{state: slotOccupied, hash: hash, term: term}
			t.occupied++
			t.maybeGrow()
			return nil
		case slotTombstone:
			if firstTombstone < 0 {
				firstTombstone = int(i)
			}
		case slotOccupied:
			if s.hash == hash && s.term.Monomial.Equal(term.Monomial) {
				if err := s.term.Coefficient.AddInPlace(term.Coefficient); err != nil {
					return err
				}
				if s.term.Coefficient.IsZero() {
					// Zero eviction: cancelled entries must not be
					// observable, even transiently between workers.
					*s = slot{state: slotTombstone}
					t.occupied--
					t.tombstones++
				}
				return nil
			}
		}
		i = (i + 1) & t.mask
	}
}

// placeNew inserts a term known to be absent, without the merge probe. Used
// by rehashing and disjoint merges.
func (t *Table) placeNew(hash uint64, term Term) {
	i := hash & t.mask
	for {
		s := &t.slots[i]
		if s.state != slotOccupied {
			if s.state == slotTombstone {
				t.tombstones--
			}
			*s = slot{state: slotOccupied, hash: hash, term: term}
			t.occupied++
			return
		}
		i = (i + 1) & t.mask
	}
}

// maybeGrow doubles the bucket count when occupied+tombstone load exceeds
// the threshold, rehashing only at the resize event.
func (t *Table) maybeGrow() {
	if float64(t.occupied+t.tombstones) <= t.maxLoad*float64(len(t.slots)) {
		return
	}
	t.rehash(len(t.slots) * 2)
}

// Reserve grows the table so that n entries fit without further resizing.
func (t *Table) Reserve(n int) {
	buckets := bucketCountFor(n, t.maxLoad)
	if buckets > len(t.slots) {
		t.rehash(buckets)
	}
}

func (t *Table) rehash(buckets int) {
	old := t.slots
	t.slots = make([]slot, buckets)
	t.mask = uint64(buckets - 1)
	t.occupied = 0
	t.tombstones = 0
	for i := range old {
		if old[i].state == slotOccupied {
			t.placeNew(old[i].hash, old[i].term)
		}
	}
}

// Find returns the term stored under the given monomial. The returned term
// shares storage with the table and must be treated as read-only.
func (t *Table) Find(m monomial.Monomial) (Term, bool) {
	hash := m.Hash()
	i := hash & t.mask
	for {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			return Term{}, false
		case slotOccupied:
			if s.hash == hash && s.term.Monomial.Equal(m) {
				return s.term, true
			}
		}
		i = (i + 1) & t.mask
	}
}

// ForEach visits every stored term in bucket order. Iteration stops early
// when fn returns false. The visited terms share storage with the table.
func (t *Table) ForEach(fn func(Term) bool) {
	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			if !fn(t.slots[i].term) {
				return
			}
		}
	}
}

// AbsorbDisjoint moves every entry of other into t, assuming no monomial
// occurs in both tables. This is the cheap union used after hash-band
// multiplication, where workers produce keys in disjoint bucket bands: no
// coefficient operation and no equality probe is needed, only hash-guided
// placement. other is left empty.
func (t *Table) AbsorbDisjoint(other *Table) {
	t.Reserve(t.occupied + other.occupied)
	for i := range other.slots {
		if other.slots[i].state == slotOccupied {
			t.placeNew(other.slots[i].hash, other.slots[i].term)
		}
	}
	other.slots = make([]slot, minTableCapacity)
	other.mask = minTableCapacity - 1
	other.occupied = 0
	other.tombstones = 0
}
