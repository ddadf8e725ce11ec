package database

import (
	"fmt"
	"iter"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/cacack/gedcom-engine/gnode"
)

// RecordEntry is what the RecordIndex stores for each registered record:
// the root node plus provenance for error messages.
type RecordEntry struct {
	Root    gnode.Ref
	Segment string
	Line    int
}

// DuplicateKeyError is returned by RecordIndex.Insert when a key is
// already registered.
type DuplicateKeyError struct {
	Key             string
	FirstSegment    string
	FirstLine       int
	AttemptSegment  string
	AttemptLine     int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %s: first seen in %s line %d, again in %s line %d",
		e.Key, e.FirstSegment, e.FirstLine, e.AttemptSegment, e.AttemptLine)
}

// RecordIndex maps record keys to their root node and provenance.
// Backed by an ordered map rather than a bare Go map so that Iterate's
// order is simply insertion order, not an implementation accident callers
// shouldn't rely on, the same reasoning that leads goarchive to reach for
// an ordered map whenever it needs map lookup plus deterministic
// iteration.
type RecordIndex struct {
	entries *orderedmap.OrderedMap[string, RecordEntry]
}

// NewRecordIndex creates an empty RecordIndex.
func NewRecordIndex() *RecordIndex {
	return &RecordIndex{entries: orderedmap.NewOrderedMap[string, RecordEntry]()}
}

// Insert registers root under key, failing with *DuplicateKeyError if the
// key is already present.
func (idx *RecordIndex) Insert(key string, root gnode.Ref, segment string, line int) error {
	if existing, ok := idx.entries.Get(key); ok {
		return &DuplicateKeyError{
			Key:            key,
			FirstSegment:   existing.Segment,
			FirstLine:      existing.Line,
			AttemptSegment: segment,
			AttemptLine:    line,
		}
	}
	idx.entries.Set(key, RecordEntry{Root: root, Segment: segment, Line: line})
	return nil
}

// Lookup returns the root node registered under key, or a nil Ref and
// false if there is none.
func (idx *RecordIndex) Lookup(key string) (gnode.Ref, bool) {
	entry, ok := idx.entries.Get(key)
	if !ok {
		return gnode.Nil, false
	}
	return entry.Root, true
}

// Entry returns the full RecordEntry (root, segment, line) for key.
func (idx *RecordIndex) Entry(key string) (RecordEntry, bool) {
	return idx.entries.Get(key)
}

// Classify returns the RecordType of the record under key, or (Other,
// false) if key isn't registered.
func (idx *RecordIndex) Classify(key string) (gnode.RecordType, bool) {
	entry, ok := idx.entries.Get(key)
	if !ok {
		return gnode.Other, false
	}
	rt, _ := entry.Root.RecordType()
	return rt, true
}

// Len returns the number of registered records.
func (idx *RecordIndex) Len() int {
	return idx.entries.Len()
}

// Iterate yields every (key, entry) pair in insertion order.
func (idx *RecordIndex) Iterate() iter.Seq2[string, RecordEntry] {
	return idx.entries.AllFromFront()
}

// Roots yields every registered root node, in insertion order.
func (idx *RecordIndex) Roots() iter.Seq[gnode.Ref] {
	return func(yield func(gnode.Ref) bool) {
		for _, entry := range idx.entries.AllFromFront() {
			if !yield(entry.Root) {
				return
			}
		}
	}
}

// RootsOfType yields every registered root whose RecordType equals rt.
func (idx *RecordIndex) RootsOfType(rt gnode.RecordType) iter.Seq[gnode.Ref] {
	return func(yield func(gnode.Ref) bool) {
		for _, entry := range idx.entries.AllFromFront() {
			if t, ok := entry.Root.RecordType(); ok && t == rt && !yield(entry.Root) {
				return
			}
		}
	}
}
