package gnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildPerson(s *Store) Ref {
	root := s.NewRecordRoot("INDI", "", "@I1@")
	root.AppendChild(s.NewNode("NAME", "John /Smith/"))
	root.AppendChild(s.NewNode("SEX", "M"))
	root.AppendChild(s.NewNode("BIRT", ""))
	root.AppendChild(s.NewNode("FAMC", "@F1@"))
	root.AppendChild(s.NewNode("FAMS", "@F2@"))
	root.AppendChild(s.NewNode("REFN", "123"))
	return root
}

func tagsOf(head Ref) []string {
	var out []string
	for n := head; !n.IsNil(); n = n.NextSibling() {
		out = append(out, n.Tag())
	}
	return out
}

func TestSplitPersonBucketsByTag(t *testing.T) {
	s := NewStore()
	root := buildPerson(s)
	b := SplitPerson(root)

	assert.Equal(t, []string{"NAME"}, tagsOf(b.Names))
	assert.Equal(t, []string{"REFN"}, tagsOf(b.Refns))
	assert.Equal(t, []string{"SEX"}, tagsOf(b.Sex))
	assert.Equal(t, []string{"BIRT"}, tagsOf(b.Body))
	assert.Equal(t, []string{"FAMC"}, tagsOf(b.Famc))
	assert.Equal(t, []string{"FAMS"}, tagsOf(b.Fams))
	assert.True(t, root.FirstChild().IsNil())
}

func TestSplitJoinPersonRoundTripsOrder(t *testing.T) {
	s := NewStore()
	root := buildPerson(s)
	var before []string
	for c := range Children(root) {
		before = append(before, c.Tag())
	}

	b := SplitPerson(root)
	JoinPerson(root, b)

	var after []string
	for c := range Children(root) {
		after = append(after, c.Tag())
		assert.True(t, c.Parent().Equal(root))
	}
	assert.Equal(t, before, after)
}

func buildFamily(s *Store) Ref {
	root := s.NewRecordRoot("FAM", "", "@F1@")
	root.AppendChild(s.NewNode("HUSB", "@I1@"))
	root.AppendChild(s.NewNode("WIFE", "@I2@"))
	root.AppendChild(s.NewNode("CHIL", "@I3@"))
	root.AppendChild(s.NewNode("MARR", ""))
	root.AppendChild(s.NewNode("REFN", "9"))
	return root
}

func TestSplitJoinFamilyRoundTripsOrder(t *testing.T) {
	s := NewStore()
	root := buildFamily(s)
	var before []string
	for c := range Children(root) {
		before = append(before, c.Tag())
	}

	b := SplitFamily(root)
	JoinFamily(root, b)

	var after []string
	for c := range Children(root) {
		after = append(after, c.Tag())
	}
	assert.Equal(t, before, after)
}

func TestAppendSiblingOnEmptyChain(t *testing.T) {
	s := NewStore()
	n := s.NewNode("CHIL", "@I4@")
	head := AppendSibling(Nil, n)
	assert.True(t, head.Equal(n))
	assert.True(t, n.NextSibling().IsNil())
}

func TestAppendSiblingGrowsChain(t *testing.T) {
	s := NewStore()
	a := s.NewNode("CHIL", "@I1@")
	b := s.NewNode("CHIL", "@I2@")
	head := AppendSibling(a, b)
	assert.True(t, head.Equal(a))
	assert.Equal(t, []string{"@I1@", "@I2@"}, []string{head.Value(), head.NextSibling().Value()})
}

func TestAddChildViaSplitJoinPreservesSiblingNotParentChild(t *testing.T) {
	s := NewStore()
	family := buildFamily(s)
	fb := SplitFamily(family)
	newChil := s.NewNode("CHIL", "@I9@")
	fb.Chil = AppendSibling(fb.Chil, newChil)
	JoinFamily(family, fb)

	var chilValues []string
	for c := range ChildrenWithTag(family, "CHIL") {
		chilValues = append(chilValues, c.Value())
		assert.True(t, c.Parent().Equal(family), "CHIL node must be a direct child of family, not nested")
	}
	assert.Equal(t, []string{"@I3@", "@I9@"}, chilValues)
}
