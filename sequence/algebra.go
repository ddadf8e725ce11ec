package sequence

import (
	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
	"github.com/cacack/gedcom-engine/keys"
	"github.com/cacack/gedcom-engine/lineage"
)

func lessKey(a, b string) bool {
	return keys.Less(a, b)
}

func ref(db *database.Database, key string) (gnode.Ref, bool) {
	return db.Records.Lookup(key)
}

// PersonToChildren returns the union of CHIL links across every FAMS
// family of person, preserving FAMS-then-CHIL document order.
func PersonToChildren(db *database.Database, person gnode.Ref) *Sequence {
	out := New(db)
	for family := range lineage.Famss(person, db.Records) {
		for child := range lineage.Children(family, db.Records) {
			out.Append(child.Key(), nil)
		}
	}
	return out
}

// PersonToFathers returns the HUSB of each FAMC family of person.
func PersonToFathers(db *database.Database, person gnode.Ref) *Sequence {
	out := New(db)
	for family := range lineage.Famcs(person, db.Records) {
		for father := range lineage.Husbs(family, db.Records) {
			out.Append(father.Key(), nil)
		}
	}
	return out
}

// PersonToMothers returns the WIFE of each FAMC family of person.
func PersonToMothers(db *database.Database, person gnode.Ref) *Sequence {
	out := New(db)
	for family := range lineage.Famcs(person, db.Records) {
		for mother := range lineage.Wifes(family, db.Records) {
			out.Append(mother.Key(), nil)
		}
	}
	return out
}

// FamilyToChildren returns family's children.
func FamilyToChildren(db *database.Database, family gnode.Ref) *Sequence {
	out := New(db)
	for child := range lineage.Children(family, db.Records) {
		out.Append(child.Key(), nil)
	}
	return out
}

// FamilyToFathers returns family's husbands.
func FamilyToFathers(db *database.Database, family gnode.Ref) *Sequence {
	out := New(db)
	for father := range lineage.Husbs(family, db.Records) {
		out.Append(father.Key(), nil)
	}
	return out
}

// FamilyToMothers returns family's wives.
func FamilyToMothers(db *database.Database, family gnode.Ref) *Sequence {
	out := New(db)
	for mother := range lineage.Wifes(family, db.Records) {
		out.Append(mother.Key(), nil)
	}
	return out
}

// PersonToSpouses returns, for each FAMS family of person, the
// opposite-role partner(s), excluding person itself.
func PersonToSpouses(db *database.Database, person gnode.Ref) *Sequence {
	out := New(db)
	for family := range lineage.Famss(person, db.Records) {
		for husb := range lineage.Husbs(family, db.Records) {
			if !husb.Equal(person) {
				out.Append(husb.Key(), nil)
			}
		}
		for wife := range lineage.Wifes(family, db.Records) {
			if !wife.Equal(person) {
				out.Append(wife.Key(), nil)
			}
		}
	}
	return out
}

// PersonToFamilies returns person's FAMS families, or FAMS ∪ FAMC
// families if includeChildFamilies is true.
func PersonToFamilies(db *database.Database, person gnode.Ref, includeChildFamilies bool) *Sequence {
	out := New(db)
	for family := range lineage.Famss(person, db.Records) {
		out.Append(family.Key(), nil)
	}
	if includeChildFamilies {
		for family := range lineage.Famcs(person, db.Records) {
			out.Append(family.Key(), nil)
		}
	}
	return out
}

// NameToSequence resolves pattern through db's name index, returning a
// Sequence of the matching persons in the index's match order.
func NameToSequence(db *database.Database, pattern string) *Sequence {
	out := New(db)
	for _, key := range db.Names.Search(pattern) {
		out.Append(key, nil)
	}
	return out
}

// AncestorSequence BFS-walks upward from seed through FAMC→HUSB/WIFE.
// With closed=false the seed elements are excluded from the result; with
// closed=true they're included. Each ancestor appears once, in BFS
// discovery order; a visited-set of person keys guards against cycles in
// malformed data.
func AncestorSequence(seed *Sequence, closed bool) *Sequence {
	return closureSequence(seed, closed, func(db *database.Database, p gnode.Ref) []gnode.Ref {
		var next []gnode.Ref
		for family := range lineage.Famcs(p, db.Records) {
			for husb := range lineage.Husbs(family, db.Records) {
				next = append(next, husb)
			}
			for wife := range lineage.Wifes(family, db.Records) {
				next = append(next, wife)
			}
		}
		return next
	})
}

// DescendentSequence BFS-walks downward from seed through FAMS→CHIL, with
// the same closed-flag and cycle-guard semantics as AncestorSequence.
func DescendentSequence(seed *Sequence, closed bool) *Sequence {
	return closureSequence(seed, closed, func(db *database.Database, p gnode.Ref) []gnode.Ref {
		var next []gnode.Ref
		for family := range lineage.Famss(p, db.Records) {
			for child := range lineage.Children(family, db.Records) {
				next = append(next, child)
			}
		}
		return next
	})
}

// closureSequence runs a BFS over seed's persons using expand to find each
// node's neighbors, with a visited-set cycle guard. closed controls
// whether the seed elements themselves are included in the result.
func closureSequence(seed *Sequence, closed bool, expand func(*database.Database, gnode.Ref) []gnode.Ref) *Sequence {
	db := seed.db
	out := New(db)
	visited := make(map[string]bool)
	var queue []gnode.Ref

	for _, key := range seed.Keys() {
		if visited[key] {
			continue
		}
		visited[key] = true
		if p, ok := ref(db, key); ok {
			queue = append(queue, p)
		}
		if closed {
			out.Append(key, nil)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, next := range expand(db, p) {
			if visited[next.Key()] {
				continue
			}
			visited[next.Key()] = true
			out.Append(next.Key(), nil)
			queue = append(queue, next)
		}
	}
	return out
}

// SiblingSequence returns the union of CHIL(FAMC(p)) for every p in seed.
// A person in seed is excluded from its own sibling set unless
// includeSelf is true.
func SiblingSequence(seed *Sequence, includeSelf bool) *Sequence {
	db := seed.db
	out := New(db)
	seen := make(map[string]bool)
	for _, key := range seed.Keys() {
		p, ok := ref(db, key)
		if !ok {
			continue
		}
		for family := range lineage.Famcs(p, db.Records) {
			for sibling := range lineage.Children(family, db.Records) {
				if !includeSelf && sibling.Equal(p) {
					continue
				}
				if seen[sibling.Key()] {
					continue
				}
				seen[sibling.Key()] = true
				out.Append(sibling.Key(), nil)
			}
		}
	}
	return out
}

// ParentSequence returns the one-hop union of fathers and mothers of
// every person in seq.
func ParentSequence(seq *Sequence) *Sequence {
	return oneHop(seq, func(db *database.Database, p gnode.Ref) *Sequence {
		out := PersonToFathers(db, p)
		out.AppendSequence(PersonToMothers(db, p))
		return out
	})
}

// ChildSequence returns the one-hop union of children of every person in
// seq.
func ChildSequence(seq *Sequence) *Sequence {
	return oneHop(seq, PersonToChildren)
}

// SpouseSequence returns the one-hop union of spouses of every person in
// seq.
func SpouseSequence(seq *Sequence) *Sequence {
	return oneHop(seq, PersonToSpouses)
}

func oneHop(seq *Sequence, step func(*database.Database, gnode.Ref) *Sequence) *Sequence {
	db := seq.db
	out := New(db)
	for _, key := range seq.Keys() {
		p, ok := ref(db, key)
		if !ok {
			continue
		}
		out.AppendSequence(step(db, p))
	}
	return out
}

// Union returns a KeySorted, unique Sequence of every key present in a or
// b. Neither input is mutated.
func Union(a, b *Sequence) *Sequence {
	ua, ub := preparedCopy(a), preparedCopy(b)
	out := New(a.db)
	i, j := 0, 0
	for i < len(ua.elements) && j < len(ub.elements) {
		switch {
		case ua.elements[i].key == ub.elements[j].key:
			out.Append(ua.elements[i].key, nil)
			i++
			j++
		case lessKey(ua.elements[i].key, ub.elements[j].key):
			out.Append(ua.elements[i].key, nil)
			i++
		default:
			out.Append(ub.elements[j].key, nil)
			j++
		}
	}
	for ; i < len(ua.elements); i++ {
		out.Append(ua.elements[i].key, nil)
	}
	for ; j < len(ub.elements); j++ {
		out.Append(ub.elements[j].key, nil)
	}
	out.sortType = KeySorted
	out.unique = true
	return out
}

// Intersect returns a KeySorted, unique Sequence of keys present in both a
// and b. Neither input is mutated.
func Intersect(a, b *Sequence) *Sequence {
	ua, ub := preparedCopy(a), preparedCopy(b)
	out := New(a.db)
	i, j := 0, 0
	for i < len(ua.elements) && j < len(ub.elements) {
		switch {
		case ua.elements[i].key == ub.elements[j].key:
			out.Append(ua.elements[i].key, nil)
			i++
			j++
		case lessKey(ua.elements[i].key, ub.elements[j].key):
			i++
		default:
			j++
		}
	}
	out.sortType = KeySorted
	out.unique = true
	return out
}

// Difference returns a KeySorted, unique Sequence of keys in a but not in
// b. Neither input is mutated.
func Difference(a, b *Sequence) *Sequence {
	ua, ub := preparedCopy(a), preparedCopy(b)
	out := New(a.db)
	i, j := 0, 0
	for i < len(ua.elements) {
		if j >= len(ub.elements) || lessKey(ua.elements[i].key, ub.elements[j].key) {
			out.Append(ua.elements[i].key, nil)
			i++
			continue
		}
		if ua.elements[i].key == ub.elements[j].key {
			i++
			j++
			continue
		}
		j++
	}
	out.sortType = KeySorted
	out.unique = true
	return out
}

// preparedCopy returns a KeySorted, unique copy of s without mutating s.
func preparedCopy(s *Sequence) *Sequence {
	c := s.Copy()
	if c.sortType != KeySorted || !c.unique {
		c.UniqueInPlace()
	}
	return c
}
