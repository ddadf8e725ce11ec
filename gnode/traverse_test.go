package gnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSampleTree(s *Store) Ref {
	root := s.NewRecordRoot("INDI", "", "@I1@")
	name := s.NewNode("NAME", "John /Smith/")
	given := s.NewNode("GIVN", "John")
	surn := s.NewNode("SURN", "Smith")
	name.AppendChild(given)
	name.AppendChild(surn)
	sex := s.NewNode("SEX", "M")
	famc := s.NewNode("FAMC", "@F1@")
	root.AppendChild(name)
	root.AppendChild(sex)
	root.AppendChild(famc)
	return root
}

func TestChildren(t *testing.T) {
	s := NewStore()
	root := buildSampleTree(s)
	var tags []string
	for c := range Children(root) {
		tags = append(tags, c.Tag())
	}
	assert.Equal(t, []string{"NAME", "SEX", "FAMC"}, tags)
}

func TestChildrenWithTag(t *testing.T) {
	s := NewStore()
	root := buildSampleTree(s)
	var values []string
	for c := range ChildrenWithTag(root, "FAMC") {
		values = append(values, c.Value())
	}
	assert.Equal(t, []string{"@F1@"}, values)
}

func TestFirstChildWithTagMissing(t *testing.T) {
	s := NewStore()
	root := buildSampleTree(s)
	assert.True(t, FirstChildWithTag(root, "FAMS").IsNil())
}

func TestTraverseIsPreOrderAndExcludesRoot(t *testing.T) {
	s := NewStore()
	root := buildSampleTree(s)
	var tags []string
	for n := range Traverse(root) {
		tags = append(tags, n.Tag())
	}
	assert.Equal(t, []string{"NAME", "GIVN", "SURN", "SEX", "FAMC"}, tags)
}

func TestTraverseStopsEarly(t *testing.T) {
	s := NewStore()
	root := buildSampleTree(s)
	var tags []string
	for n := range Traverse(root) {
		tags = append(tags, n.Tag())
		if n.Tag() == "NAME" {
			break
		}
	}
	assert.Equal(t, []string{"NAME"}, tags)
}
