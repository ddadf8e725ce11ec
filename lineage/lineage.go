package lineage

import (
	"iter"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
)

// Famcs yields each family person is a child in: every FAMC line under
// person whose value resolves against idx.
func Famcs(person gnode.Ref, idx *database.RecordIndex) iter.Seq[gnode.Ref] {
	return resolvedTargets(person, "FAMC", idx)
}

// Famss yields each family person is a spouse in: every FAMS line under
// person whose value resolves against idx.
func Famss(person gnode.Ref, idx *database.RecordIndex) iter.Seq[gnode.Ref] {
	return resolvedTargets(person, "FAMS", idx)
}

// Husbs yields every husband of family: each HUSB line whose value
// resolves against idx.
func Husbs(family gnode.Ref, idx *database.RecordIndex) iter.Seq[gnode.Ref] {
	return resolvedTargets(family, "HUSB", idx)
}

// Wifes yields every wife of family: each WIFE line whose value resolves
// against idx.
func Wifes(family gnode.Ref, idx *database.RecordIndex) iter.Seq[gnode.Ref] {
	return resolvedTargets(family, "WIFE", idx)
}

// Children yields every child of family: each CHIL line whose value
// resolves against idx.
func Children(family gnode.Ref, idx *database.RecordIndex) iter.Seq[gnode.Ref] {
	return resolvedTargets(family, "CHIL", idx)
}

// resolvedTargets yields, for each direct child of root tagged tag, the
// record that child's value resolves to in idx, skipping any that don't
// resolve.
func resolvedTargets(root gnode.Ref, tag string, idx *database.RecordIndex) iter.Seq[gnode.Ref] {
	return func(yield func(gnode.Ref) bool) {
		for line := range gnode.ChildrenWithTag(root, tag) {
			target, ok := idx.Lookup(line.Value())
			if !ok {
				continue
			}
			if !yield(target) {
				return
			}
		}
	}
}
