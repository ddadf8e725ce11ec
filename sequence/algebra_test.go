package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
)

// buildThreeGenerations builds @I1@+@I2@ (grandparents) -> @F1@ -> @I3@
// (parent) -> @F2@ -> @I4@ (child), plus a sibling @I5@ of @I3@, matching
// the scenario S5 shape from the universal-property test suite.
func buildThreeGenerations(t *testing.T) (*database.Database, map[string]gnode.Ref) {
	t.Helper()
	db := database.New()
	s := gnode.NewStore()

	grandfather := s.NewRecordRoot("INDI", "", "@I1@")
	grandmother := s.NewRecordRoot("INDI", "", "@I2@")
	parent := s.NewRecordRoot("INDI", "", "@I3@")
	sibling := s.NewRecordRoot("INDI", "", "@I5@")
	child := s.NewRecordRoot("INDI", "", "@I4@")

	famGrandparents := s.NewRecordRoot("FAM", "", "@F1@")
	famGrandparents.AppendChild(s.NewNode("HUSB", "@I1@"))
	famGrandparents.AppendChild(s.NewNode("WIFE", "@I2@"))
	famGrandparents.AppendChild(s.NewNode("CHIL", "@I3@"))
	famGrandparents.AppendChild(s.NewNode("CHIL", "@I5@"))

	famParent := s.NewRecordRoot("FAM", "", "@F2@")
	famParent.AppendChild(s.NewNode("HUSB", "@I3@"))
	famParent.AppendChild(s.NewNode("CHIL", "@I4@"))

	grandfather.AppendChild(s.NewNode("FAMS", "@F1@"))
	grandmother.AppendChild(s.NewNode("FAMS", "@F1@"))
	parent.AppendChild(s.NewNode("FAMC", "@F1@"))
	parent.AppendChild(s.NewNode("FAMS", "@F2@"))
	sibling.AppendChild(s.NewNode("FAMC", "@F1@"))
	child.AppendChild(s.NewNode("FAMC", "@F2@"))

	refs := map[string]gnode.Ref{
		"@I1@": grandfather, "@I2@": grandmother, "@I3@": parent,
		"@I4@": child, "@I5@": sibling,
		"@F1@": famGrandparents, "@F2@": famParent,
	}
	for key, r := range refs {
		require.NoError(t, db.Records.Insert(key, r, "seg", 1))
	}
	return db, refs
}

func TestPersonToChildren(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	got := PersonToChildren(db, refs["@I1@"])
	assert.Equal(t, []string{"@I3@", "@I5@"}, got.Keys())
}

func TestPersonToFathersAndMothers(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	fathers := PersonToFathers(db, refs["@I3@"])
	mothers := PersonToMothers(db, refs["@I3@"])
	assert.Equal(t, []string{"@I1@"}, fathers.Keys())
	assert.Equal(t, []string{"@I2@"}, mothers.Keys())
}

func TestPersonToSpousesExcludesSelf(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	spouses := PersonToSpouses(db, refs["@I1@"])
	assert.Equal(t, []string{"@I2@"}, spouses.Keys())
}

func TestPersonToFamiliesIncludeChildFamilies(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	famsOnly := PersonToFamilies(db, refs["@I3@"], false)
	assert.Equal(t, []string{"@F2@"}, famsOnly.Keys())

	both := PersonToFamilies(db, refs["@I3@"], true)
	assert.Equal(t, []string{"@F2@", "@F1@"}, both.Keys())
}

func TestAncestorSequenceOpenAndClosed(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	seed := New(db)
	seed.Append(refs["@I3@"].Key(), nil)

	open := AncestorSequence(seed, false)
	open.KeySort()
	assert.Equal(t, []string{"@I1@", "@I2@"}, open.Keys())

	closed := AncestorSequence(seed, true)
	closed.KeySort()
	assert.Equal(t, []string{"@I1@", "@I2@", "@I3@"}, closed.Keys())
}

func TestDescendentSequence(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	seed := New(db)
	seed.Append(refs["@I1@"].Key(), nil)

	desc := DescendentSequence(seed, false)
	desc.KeySort()
	assert.Equal(t, []string{"@I3@", "@I4@", "@I5@"}, desc.Keys())
}

func TestSiblingSequenceExcludesSelfByDefault(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	seed := New(db)
	seed.Append(refs["@I3@"].Key(), nil)

	siblings := SiblingSequence(seed, false)
	assert.Equal(t, []string{"@I5@"}, siblings.Keys())

	withSelf := SiblingSequence(seed, true)
	withSelf.KeySort()
	assert.Equal(t, []string{"@I3@", "@I5@"}, withSelf.Keys())
}

func TestAncestorClosureIsMonotone(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	small := New(db)
	small.Append(refs["@I4@"].Key(), nil)
	smallAncestors := AncestorSequence(small, false)
	smallAncestors.KeySort()

	bigger := New(db)
	bigger.Append(refs["@I4@"].Key(), nil)
	bigger.Append(refs["@I5@"].Key(), nil)
	biggerAncestors := AncestorSequence(bigger, false)
	biggerAncestors.KeySort()

	for _, k := range smallAncestors.Keys() {
		assert.True(t, biggerAncestors.Contains(k), "ancestor closure must be monotone in the seed")
	}
}

func TestUnionIntersectDifference(t *testing.T) {
	db := database.New()
	a := New(db)
	a.Append("@I1@", nil)
	a.Append("@I2@", nil)
	b := New(db)
	b.Append("@I2@", nil)
	b.Append("@I3@", nil)

	assert.Equal(t, []string{"@I1@", "@I2@", "@I3@"}, Union(a, b).Keys())
	assert.Equal(t, []string{"@I2@"}, Intersect(a, b).Keys())
	assert.Equal(t, []string{"@I1@"}, Difference(a, b).Keys())

	// inputs must be left untouched
	assert.Equal(t, []string{"@I1@", "@I2@"}, a.Keys())
	assert.Equal(t, []string{"@I2@", "@I3@"}, b.Keys())
}

func TestUnionIsCommutativeAndIdempotent(t *testing.T) {
	db := database.New()
	a := New(db)
	a.Append("@I1@", nil)
	a.Append("@I3@", nil)
	b := New(db)
	b.Append("@I2@", nil)
	b.Append("@I3@", nil)

	assert.Equal(t, Union(a, b).Keys(), Union(b, a).Keys())
	assert.Equal(t, Union(a, a).Keys(), a.Unique().Keys())
}

func TestDifferenceOfSequenceWithItselfIsEmpty(t *testing.T) {
	db := database.New()
	a := New(db)
	a.Append("@I1@", nil)
	a.Append("@I2@", nil)
	assert.Equal(t, 0, Difference(a, a).Len())
}

func TestUnionOfAWithDifferenceEqualsUnion(t *testing.T) {
	db := database.New()
	a := New(db)
	a.Append("@I1@", nil)
	b := New(db)
	b.Append("@I1@", nil)
	b.Append("@I2@", nil)

	lhs := Union(a, Difference(b, a)).Keys()
	rhs := Union(a, b).Keys()
	assert.Equal(t, rhs, lhs)
}

func TestParentChildSpouseOneHop(t *testing.T) {
	db, refs := buildThreeGenerations(t)
	seq := New(db)
	seq.Append(refs["@I3@"].Key(), nil)

	parents := ParentSequence(seq)
	parents.KeySort()
	assert.Equal(t, []string{"@I1@", "@I2@"}, parents.Keys())

	children := ChildSequence(seq)
	assert.Equal(t, []string{"@I4@"}, children.Keys())
}

func TestNameToSequence(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	p := s.NewRecordRoot("INDI", "", "@I1@")
	p.AppendChild(s.NewNode("NAME", "Joseph /Grenda/"))
	require.NoError(t, db.Records.Insert(p.Key(), p, "seg", 1))
	db.Names.Insert("grenda\x00joseph", "@I1@")

	seq := NameToSequence(db, "*/Grenda")
	assert.Equal(t, []string{"@I1@"}, seq.Keys())
}
