package lineage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
)

func buildFamilyWithMembers(t *testing.T) (*database.RecordIndex, gnode.Ref, gnode.Ref, gnode.Ref, gnode.Ref) {
	t.Helper()
	idx := database.NewRecordIndex()
	s := gnode.NewStore()

	husb := s.NewRecordRoot("INDI", "", "@I1@")
	wife := s.NewRecordRoot("INDI", "", "@I2@")
	child := s.NewRecordRoot("INDI", "", "@I3@")
	family := s.NewRecordRoot("FAM", "", "@F1@")
	family.AppendChild(s.NewNode("HUSB", "@I1@"))
	family.AppendChild(s.NewNode("WIFE", "@I2@"))
	family.AppendChild(s.NewNode("CHIL", "@I3@"))
	family.AppendChild(s.NewNode("CHIL", "@I404@")) // dangling, must be skipped
	husb.AppendChild(s.NewNode("FAMS", "@F1@"))
	child.AppendChild(s.NewNode("FAMC", "@F1@"))
	child.AppendChild(s.NewNode("FAMC", "@F404@")) // dangling, must be skipped

	require.NoError(t, idx.Insert("@I1@", husb, "seg", 1))
	require.NoError(t, idx.Insert("@I2@", wife, "seg", 2))
	require.NoError(t, idx.Insert("@I3@", child, "seg", 3))
	require.NoError(t, idx.Insert("@F1@", family, "seg", 4))

	return idx, husb, wife, child, family
}

func TestChildrenResolvesAndSkipsDangling(t *testing.T) {
	idx, _, _, child, family := buildFamilyWithMembers(t)
	var got []gnode.Ref
	for c := range Children(family, idx) {
		got = append(got, c)
	}
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(child))
}

func TestHusbsAndWifes(t *testing.T) {
	idx, husb, wife, _, family := buildFamilyWithMembers(t)

	var husbs, wifes []gnode.Ref
	for h := range Husbs(family, idx) {
		husbs = append(husbs, h)
	}
	for w := range Wifes(family, idx) {
		wifes = append(wifes, w)
	}
	require.Len(t, husbs, 1)
	assert.True(t, husbs[0].Equal(husb))
	require.Len(t, wifes, 1)
	assert.True(t, wifes[0].Equal(wife))
}

func TestFamcsAndFamssSkipDangling(t *testing.T) {
	idx, husb, _, child, family := buildFamilyWithMembers(t)

	var famss []gnode.Ref
	for f := range Famss(husb, idx) {
		famss = append(famss, f)
	}
	require.Len(t, famss, 1)
	assert.True(t, famss[0].Equal(family))

	var famcs []gnode.Ref
	for f := range Famcs(child, idx) {
		famcs = append(famcs, f)
	}
	require.Len(t, famcs, 1, "the dangling FAMC must be silently skipped")
	assert.True(t, famcs[0].Equal(family))
}

func TestIterationStopsEarly(t *testing.T) {
	idx, _, _, _, family := buildFamilyWithMembers(t)
	count := 0
	for range Children(family, idx) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
