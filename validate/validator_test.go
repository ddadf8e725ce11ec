package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
)

func wellFormedDatabase(t *testing.T) *database.Database {
	t.Helper()
	db := database.New()
	s := gnode.NewStore()

	husb := s.NewRecordRoot("INDI", "", "@I1@")
	husb.AppendChild(s.NewNode("SEX", database.SexMale))
	husb.AppendChild(s.NewNode("FAMS", "@F1@"))

	wife := s.NewRecordRoot("INDI", "", "@I2@")
	wife.AppendChild(s.NewNode("SEX", database.SexFemale))
	wife.AppendChild(s.NewNode("FAMS", "@F1@"))

	child := s.NewRecordRoot("INDI", "", "@I3@")
	child.AppendChild(s.NewNode("FAMC", "@F1@"))

	family := s.NewRecordRoot("FAM", "", "@F1@")
	family.AppendChild(s.NewNode("HUSB", "@I1@"))
	family.AppendChild(s.NewNode("WIFE", "@I2@"))
	family.AppendChild(s.NewNode("CHIL", "@I3@"))

	for _, r := range []gnode.Ref{husb, wife, child, family} {
		require.NoError(t, db.Records.Insert(r.Key(), r, "seg", 1))
	}
	return db
}

func TestRunOnWellFormedDatabaseProducesNoIssues(t *testing.T) {
	db := wellFormedDatabase(t)
	log, stats := Run(db)
	assert.True(t, log.OK(), "expected no issues, got %v", log.Issues())
	assert.Equal(t, 3, stats.PersonsChecked)
	assert.Equal(t, 1, stats.FamiliesChecked)
}

func TestRunDetectsDanglingFAMC(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	person := s.NewRecordRoot("INDI", "", "@I1@")
	person.AppendChild(s.NewNode("FAMC", "@F404@"))
	require.NoError(t, db.Records.Insert(person.Key(), person, "seg", 1))

	log, _ := Run(db)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, CodeFAMCDangling, log.Issues()[0].Code)
}

func TestRunDetectsDanglingFAMS(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	person := s.NewRecordRoot("INDI", "", "@I1@")
	person.AppendChild(s.NewNode("FAMS", "@F404@"))
	require.NoError(t, db.Records.Insert(person.Key(), person, "seg", 1))

	log, _ := Run(db)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, CodeFAMSDangling, log.Issues()[0].Code)
}

func TestRunDetectsChildNotFound(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	child := s.NewRecordRoot("INDI", "", "@I1@")
	child.AppendChild(s.NewNode("FAMC", "@F1@"))
	family := s.NewRecordRoot("FAM", "", "@F1@") // no CHIL back-link
	require.NoError(t, db.Records.Insert(child.Key(), child, "seg", 1))
	require.NoError(t, db.Records.Insert(family.Key(), family, "seg", 1))

	log, _ := Run(db)
	var codes []string
	for _, issue := range log.Issues() {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, CodeChildNotFound)
	assert.Contains(t, codes, CodeEmptyFamily)
}

func TestRunDetectsDuplicateChild(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	child := s.NewRecordRoot("INDI", "", "@I1@")
	child.AppendChild(s.NewNode("FAMC", "@F1@"))
	family := s.NewRecordRoot("FAM", "", "@F1@")
	family.AppendChild(s.NewNode("CHIL", "@I1@"))
	family.AppendChild(s.NewNode("CHIL", "@I1@"))
	require.NoError(t, db.Records.Insert(child.Key(), child, "seg", 1))
	require.NoError(t, db.Records.Insert(family.Key(), family, "seg", 1))

	log, _ := Run(db)
	var codes []string
	for _, issue := range log.Issues() {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, CodeDuplicateChild)
}

func TestRunDetectsSpouseSexUnknown(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	spouse := s.NewRecordRoot("INDI", "", "@I1@")
	spouse.AppendChild(s.NewNode("FAMS", "@F1@"))
	family := s.NewRecordRoot("FAM", "", "@F1@")
	family.AppendChild(s.NewNode("HUSB", "@I1@"))
	require.NoError(t, db.Records.Insert(spouse.Key(), spouse, "seg", 1))
	require.NoError(t, db.Records.Insert(family.Key(), family, "seg", 1))

	log, _ := Run(db)
	var codes []string
	for _, issue := range log.Issues() {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, CodeSpouseSexUnknown)
}

func TestRunDetectsSpouseNotLinked(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	spouse := s.NewRecordRoot("INDI", "", "@I1@")
	spouse.AppendChild(s.NewNode("SEX", database.SexMale))
	spouse.AppendChild(s.NewNode("FAMS", "@F1@"))
	family := s.NewRecordRoot("FAM", "", "@F1@") // no HUSB back-link
	require.NoError(t, db.Records.Insert(spouse.Key(), spouse, "seg", 1))
	require.NoError(t, db.Records.Insert(family.Key(), family, "seg", 1))

	log, _ := Run(db)
	var codes []string
	for _, issue := range log.Issues() {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, CodeSpouseNotLinked)
}

func TestRunDetectsEmptyFamily(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	family := s.NewRecordRoot("FAM", "", "@F1@")
	require.NoError(t, db.Records.Insert(family.Key(), family, "seg", 1))

	log, _ := Run(db)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, CodeEmptyFamily, log.Issues()[0].Code)
}

func TestRunNeverShortCircuits(t *testing.T) {
	db := database.New()
	s := gnode.NewStore()
	broken1 := s.NewRecordRoot("INDI", "", "@I1@")
	broken1.AppendChild(s.NewNode("FAMC", "@F404@"))
	broken2 := s.NewRecordRoot("INDI", "", "@I2@")
	broken2.AppendChild(s.NewNode("FAMS", "@F405@"))
	require.NoError(t, db.Records.Insert(broken1.Key(), broken1, "seg", 1))
	require.NoError(t, db.Records.Insert(broken2.Key(), broken2, "seg", 1))

	log, stats := Run(db)
	assert.Equal(t, 2, log.Len())
	assert.Equal(t, 2, stats.ErrorsByKind[LinkageError])
}
