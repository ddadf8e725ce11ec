package database

import (
	"fmt"

	"github.com/cacack/gedcom-engine/gnode"
)

// SexMale and SexFemale are the two recognised values of a person's SEX
// line for AddSpouseToFamily. Anything else (including "") is rejected.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// AddChildToFamily links an existing child into an existing family: it
// appends a CHIL line to family and a FAMC line to child, each pointing at
// the other. Both records must already be registered in idx so their keys
// are stable; AddChildToFamily itself only rewrites the two sibling
// chains, the way the source's addChildToFamily splits and rejoins the
// family and the child rather than splicing a raw GNode into place.
func AddChildToFamily(idx *RecordIndex, child, family gnode.Ref) error {
	if _, ok := idx.Entry(family.Key()); !ok {
		return fmt.Errorf("add child: family %s is not registered", family.Key())
	}
	if _, ok := idx.Entry(child.Key()); !ok {
		return fmt.Errorf("add child: person %s is not registered", child.Key())
	}

	fb := gnode.SplitFamily(family)
	newChil := family.Store().NewNode("CHIL", child.Key())
	fb.Chil = appendToChain(fb.Chil, newChil)
	gnode.JoinFamily(family, fb)

	pb := gnode.SplitPerson(child)
	newFamc := child.Store().NewNode("FAMC", family.Key())
	pb.Famc = appendToChain(pb.Famc, newFamc)
	gnode.JoinPerson(child, pb)

	return nil
}

// AddSpouseToFamily links an existing person into an existing family as a
// spouse of the given sex: it appends a HUSB or WIFE line to family and a
// FAMS line to spouse, mirroring the source's addSpouseToFamily.
func AddSpouseToFamily(idx *RecordIndex, spouse, family gnode.Ref, sex string) error {
	if sex != SexMale && sex != SexFemale {
		return fmt.Errorf("add spouse: unsupported sex %q", sex)
	}
	if _, ok := idx.Entry(family.Key()); !ok {
		return fmt.Errorf("add spouse: family %s is not registered", family.Key())
	}
	if _, ok := idx.Entry(spouse.Key()); !ok {
		return fmt.Errorf("add spouse: person %s is not registered", spouse.Key())
	}

	fb := gnode.SplitFamily(family)
	if sex == SexMale {
		newHusb := family.Store().NewNode("HUSB", spouse.Key())
		fb.Husb = appendToChain(fb.Husb, newHusb)
	} else {
		newWife := family.Store().NewNode("WIFE", spouse.Key())
		fb.Wife = appendToChain(fb.Wife, newWife)
	}
	gnode.JoinFamily(family, fb)

	pb := gnode.SplitPerson(spouse)
	newFams := spouse.Store().NewNode("FAMS", family.Key())
	pb.Fams = appendToChain(pb.Fams, newFams)
	gnode.JoinPerson(spouse, pb)

	return nil
}

// appendToChain appends node to the end of a detached sibling chain.
func appendToChain(head, node gnode.Ref) gnode.Ref {
	return gnode.AppendSibling(head, node)
}
