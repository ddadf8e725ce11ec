package database

import (
	"sort"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/cacack/gedcom-engine/keys"
)

// bucket is the set of person record-keys that share a name key, kept
// sorted by the record-key comparator so membership tests are O(log n)
// and iteration is already in key order.
type bucket struct {
	recordKeys []string
}

func (b *bucket) insert(recordKey string) {
	i := sort.Search(len(b.recordKeys), func(i int) bool {
		return keys.Less(recordKey, b.recordKeys[i]) || recordKey == b.recordKeys[i]
	})
	if i < len(b.recordKeys) && b.recordKeys[i] == recordKey {
		return // already present, idempotent
	}
	b.recordKeys = append(b.recordKeys, "")
	copy(b.recordKeys[i+1:], b.recordKeys[i:])
	b.recordKeys[i] = recordKey
}

func (b *bucket) contains(recordKey string) bool {
	i := sort.Search(len(b.recordKeys), func(i int) bool {
		return keys.Less(recordKey, b.recordKeys[i]) || recordKey == b.recordKeys[i]
	})
	return i < len(b.recordKeys) && b.recordKeys[i] == recordKey
}

// NameIndex maps canonical name keys to the set of Person record-keys
// bearing a name that folds to that key.
type NameIndex struct {
	buckets *orderedmap.OrderedMap[string, *bucket]
}

// NewNameIndex creates an empty NameIndex.
func NewNameIndex() *NameIndex {
	return &NameIndex{buckets: orderedmap.NewOrderedMap[string, *bucket]()}
}

// Insert adds (nameKey, recordKey) to the index. Re-inserting an existing
// pair is a no-op.
func (n *NameIndex) Insert(nameKey, recordKey string) {
	b, ok := n.buckets.Get(nameKey)
	if !ok {
		b = &bucket{}
		n.buckets.Set(nameKey, b)
	}
	b.insert(recordKey)
}

// Search canonicalises name and returns the matching record keys in
// record-key order, or a stable empty slice if there's no match. A
// pattern containing '*' is expanded by prefix/suffix scan over every
// bucket instead of an exact lookup.
func (n *NameIndex) Search(name string) []string {
	if keys.HasWildcard(name) {
		return n.searchWildcard(name)
	}
	nameKey := keys.Canonicalize(name)
	b, ok := n.buckets.Get(nameKey)
	if !ok {
		return nil
	}
	return append([]string(nil), b.recordKeys...)
}

func (n *NameIndex) searchWildcard(pattern string) []string {
	literal, mode := keys.PatternKey(pattern)
	var out []string
	for nameKey, b := range n.buckets.AllFromFront() {
		if keys.MatchPattern(literal, mode, nameKey) {
			out = append(out, b.recordKeys...)
		}
	}
	sort.Slice(out, func(i, j int) bool { return keys.Less(out[i], out[j]) })
	return out
}

// Contains reports whether recordKey is bucketed under the canonical key
// of name. It exists mainly to let the name-index/record-index
// consistency be checked without pulling a whole bucket.
func (n *NameIndex) Contains(name, recordKey string) bool {
	nameKey := keys.Canonicalize(name)
	b, ok := n.buckets.Get(nameKey)
	if !ok {
		return false
	}
	return b.contains(recordKey)
}
