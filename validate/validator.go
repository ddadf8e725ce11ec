package validate

import (
	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
)

// Stats summarizes a validation run: how much was checked and how the
// issues found break down by kind. The source computes an analogous
// numValidations counter purely for its own debug output; this is the
// same idea surfaced as a real return value instead of a printf.
type Stats struct {
	PersonsChecked  int
	FamiliesChecked int
	ErrorsByKind    map[Kind]int
}

// Run validates every Person and Family record in db, returning the
// accumulated issue log and summary stats. Run never returns early: a
// database with issues still gets a complete log.
func Run(db *database.Database) (*Log, Stats) {
	log := NewLog()
	stats := Stats{ErrorsByKind: make(map[Kind]int)}

	for person := range db.Records.RootsOfType(gnode.Person) {
		stats.PersonsChecked++
		db.Logger.Debugw("validating person", "xref", person.Key())
		validatePerson(db, person, log)
	}
	for family := range db.Records.RootsOfType(gnode.Family) {
		stats.FamiliesChecked++
		db.Logger.Debugw("validating family", "xref", family.Key())
		validateFamily(db, family, log)
	}
	for _, issue := range log.Issues() {
		stats.ErrorsByKind[issue.Kind]++
	}
	db.Logger.Infow("validation complete",
		"persons", stats.PersonsChecked,
		"families", stats.FamiliesChecked,
		"issues", log.Len(),
	)
	return log, stats
}

func validatePerson(db *database.Database, person gnode.Ref, log *Log) {
	entry, _ := db.Records.Entry(person.Key())

	for famcLine := range gnode.ChildrenWithTag(person, "FAMC") {
		family, ok := db.Records.Lookup(famcLine.Value())
		if !ok {
			log.Add(&Issue{
				Kind: LinkageError, Code: CodeFAMCDangling,
				Segment: entry.Segment, Line: entry.Line, XRef: person.Key(),
				Message: "FAMC points at unknown record " + famcLine.Value(),
			})
			continue
		}
		switch n := countTagValue(family, "CHIL", person.Key()); {
		case n == 0:
			log.Add(&Issue{
				Kind: LinkageError, Code: CodeChildNotFound,
				Segment: entry.Segment, Line: entry.Line, XRef: person.Key(),
				Message: "family " + family.Key() + " has no CHIL back-link to this person",
			})
		case n > 1:
			log.Add(&Issue{
				Kind: StructuralError, Code: CodeDuplicateChild,
				Segment: entry.Segment, Line: entry.Line, XRef: person.Key(),
				Message: "family " + family.Key() + " lists this person as CHIL more than once",
			})
		}
	}

	for famsLine := range gnode.ChildrenWithTag(person, "FAMS") {
		family, ok := db.Records.Lookup(famsLine.Value())
		if !ok {
			log.Add(&Issue{
				Kind: LinkageError, Code: CodeFAMSDangling,
				Segment: entry.Segment, Line: entry.Line, XRef: person.Key(),
				Message: "FAMS points at unknown record " + famsLine.Value(),
			})
			continue
		}
		sex := database.Sex(person)
		var backTag string
		switch sex {
		case database.SexMale:
			backTag = "HUSB"
		case database.SexFemale:
			backTag = "WIFE"
		default:
			log.Add(&Issue{
				Kind: LinkageError, Code: CodeSpouseSexUnknown,
				Segment: entry.Segment, Line: entry.Line, XRef: person.Key(),
				Message: "person is a spouse in " + family.Key() + " but has no recorded M/F sex",
			})
			continue
		}
		if countTagValue(family, backTag, person.Key()) == 0 {
			log.Add(&Issue{
				Kind: LinkageError, Code: CodeSpouseNotLinked,
				Segment: entry.Segment, Line: entry.Line, XRef: person.Key(),
				Message: "family " + family.Key() + " has no " + backTag + " back-link to this person",
			})
		}
	}
}

func validateFamily(db *database.Database, family gnode.Ref, log *Log) {
	entry, _ := db.Records.Entry(family.Key())
	members := 0

	checkSpouse := func(tag string) {
		for line := range gnode.ChildrenWithTag(family, tag) {
			members++
			person, ok := db.Records.Lookup(line.Value())
			if !ok {
				continue // an unresolved HUSB/WIFE value is skipped without an issue
			}
			if countTagValue(person, "FAMS", family.Key()) == 0 {
				log.Add(&Issue{
					Kind: LinkageError, Code: CodeBackLinkMissing,
					Segment: entry.Segment, Line: entry.Line, XRef: family.Key(),
					Message: tag + " " + person.Key() + " has no FAMS back-link to this family",
				})
			}
		}
	}
	checkSpouse("HUSB")
	checkSpouse("WIFE")

	for line := range gnode.ChildrenWithTag(family, "CHIL") {
		members++
		person, ok := db.Records.Lookup(line.Value())
		if !ok {
			continue // an unresolved CHIL value is skipped without an issue
		}
		if countTagValue(person, "FAMC", family.Key()) == 0 {
			log.Add(&Issue{
				Kind: LinkageError, Code: CodeBackLinkMissing,
				Segment: entry.Segment, Line: entry.Line, XRef: family.Key(),
				Message: "CHIL " + person.Key() + " has no FAMC back-link to this family",
			})
		}
	}

	if members == 0 {
		log.Add(&Issue{
			Kind: StructuralError, Code: CodeEmptyFamily,
			Segment: entry.Segment, Line: entry.Line, XRef: family.Key(),
			Message: "family has no HUSB, WIFE, or CHIL",
		})
	}
}

// countTagValue counts root's direct children tagged tag whose value
// equals value.
func countTagValue(root gnode.Ref, tag, value string) int {
	n := 0
	for line := range gnode.ChildrenWithTag(root, tag) {
		if line.Value() == value {
			n++
		}
	}
	return n
}
