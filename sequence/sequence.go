package sequence

import (
	"sort"
	"strings"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/keys"
)

// SortType records what order a Sequence's elements are currently in, the
// same four-state enum the source's SortType carries.
type SortType int

const (
	Unsorted SortType = iota
	KeySorted
	NameSorted
	ValueSorted
)

// element is one entry: a record key, plus an opaque annotation the
// source's SequenceEl.value slot also carried, uninterpreted by this
// package. Display name is resolved lazily from the database, not stored.
type element struct {
	key        string
	annotation any
}

// Sequence is an ordered, optionally-unique collection of person record
// keys over a single Database.
type Sequence struct {
	db       *database.Database
	elements []element
	sortType SortType
	unique   bool
}

// New creates an empty Sequence over db.
func New(db *database.Database) *Sequence {
	return &Sequence{db: db}
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.elements)
}

// SortType reports the current sort state.
func (s *Sequence) SortType() SortType {
	return s.sortType
}

// IsUnique reports whether membership has been de-duplicated.
func (s *Sequence) IsUnique() bool {
	return s.unique
}

// Database returns the Sequence's owning database.
func (s *Sequence) Database() *database.Database {
	return s.db
}

// Append adds key with an optional annotation, in O(1). Appending
// invalidates both the sort and uniqueness flags, the new element hasn't
// been placed or checked against the rest.
func (s *Sequence) Append(key string, annotation any) {
	s.elements = append(s.elements, element{key: key, annotation: annotation})
	s.sortType = Unsorted
	s.unique = false
}

// Contains reports whether key is present. It's O(log n) when the
// Sequence is KeySorted, O(n) otherwise.
func (s *Sequence) Contains(key string) bool {
	if s.sortType == KeySorted {
		i := s.searchKeySorted(key)
		return i < len(s.elements) && s.elements[i].key == key
	}
	for _, e := range s.elements {
		if e.key == key {
			return true
		}
	}
	return false
}

func (s *Sequence) searchKeySorted(key string) int {
	return sort.Search(len(s.elements), func(i int) bool {
		return !keys.Less(s.elements[i].key, key)
	})
}

// Remove deletes the first occurrence of key, reporting whether it was
// found. Sort order among the remaining elements is preserved.
func (s *Sequence) Remove(key string) bool {
	for i, e := range s.elements {
		if e.key == key {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return true
		}
	}
	return false
}

// Empty truncates the Sequence to zero length, preserving its database
// reference.
func (s *Sequence) Empty() {
	s.elements = nil
	s.sortType = Unsorted
	s.unique = false
}

// Copy returns a deep copy: a new element slice, with sort/unique flags
// preserved.
func (s *Sequence) Copy() *Sequence {
	out := &Sequence{db: s.db, sortType: s.sortType, unique: s.unique}
	out.elements = append([]element(nil), s.elements...)
	return out
}

// KeySort stably sorts the elements by the record-key comparator.
func (s *Sequence) KeySort() {
	sort.SliceStable(s.elements, func(i, j int) bool {
		return keys.Less(s.elements[i].key, s.elements[j].key)
	})
	s.sortType = KeySorted
}

// NameSort sorts the elements by resolved, case-folded display name.
// Elements without a resolvable name sort last.
func (s *Sequence) NameSort() {
	names := make([]string, len(s.elements))
	hasName := make([]bool, len(s.elements))
	for i, e := range s.elements {
		name, ok := s.resolveName(e.key)
		names[i] = strings.ToLower(name)
		hasName[i] = ok
	}
	idx := make([]int, len(s.elements))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if hasName[ia] != hasName[ib] {
			return hasName[ia] // named elements sort before unnamed ones
		}
		return names[ia] < names[ib]
	})
	sorted := make([]element, len(s.elements))
	for i, j := range idx {
		sorted[i] = s.elements[j]
	}
	s.elements = sorted
	s.sortType = NameSorted
}

func (s *Sequence) resolveName(key string) (string, bool) {
	person, ok := s.db.Records.Lookup(key)
	if !ok {
		return "", false
	}
	name := database.FirstName(person)
	if name == "" {
		return "", false
	}
	return name, true
}

// Unique returns a new KeySorted sequence with duplicate keys removed,
// leaving s unmodified.
func (s *Sequence) Unique() *Sequence {
	out := s.Copy()
	out.UniqueInPlace()
	return out
}

// UniqueInPlace key-sorts s (if needed) and removes duplicate keys.
func (s *Sequence) UniqueInPlace() {
	if s.sortType != KeySorted {
		s.KeySort()
	}
	deduped := s.elements[:0]
	var last string
	for i, e := range s.elements {
		if i > 0 && e.key == last {
			continue
		}
		deduped = append(deduped, e)
		last = e.key
	}
	s.elements = deduped
	s.unique = true
}

// AppendSequence concatenates other's elements onto s. The result's sort
// and uniqueness flags reset, since concatenation can break both.
func (s *Sequence) AppendSequence(other *Sequence) {
	s.elements = append(s.elements, other.elements...)
	s.sortType = Unsorted
	s.unique = false
}

// Element returns the key, resolved display name (possibly ""), and
// annotation of the i'th element.
func (s *Sequence) Element(i int) (key, name string, annotation any) {
	e := s.elements[i]
	name, _ = s.resolveName(e.key)
	return e.key, name, e.annotation
}

// Keys returns every element's record key, in current order.
func (s *Sequence) Keys() []string {
	out := make([]string, len(s.elements))
	for i, e := range s.elements {
		out[i] = e.key
	}
	return out
}
