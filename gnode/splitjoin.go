package gnode

// PersonBuckets holds a Person record root's children partitioned into the
// canonical groups the query and mutation layers need direct access to.
// Each field is the head of its own detached sibling chain (parent is Nil
// on every node in the chain) until Join reattaches it.
type PersonBuckets struct {
	Names Ref // NAME children
	Refns Ref // REFN children
	Sex   Ref // SEX children (normally zero or one)
	Body  Ref // everything else (events, attributes, notes, ...)
	Famc  Ref // FAMC children
	Fams  Ref // FAMS children
}

// FamilyBuckets holds a Family record root's children partitioned the same
// way PersonBuckets does.
type FamilyBuckets struct {
	Refns Ref // REFN children
	Husb  Ref // HUSB children
	Wife  Ref // WIFE children
	Chil  Ref // CHIL children
	Rest  Ref // everything else
}

// chainBuilder accumulates nodes into a sibling chain, preserving the order
// they were added in and detaching each from its previous parent.
type chainBuilder struct {
	head, tail Ref
}

func (b *chainBuilder) add(n Ref) {
	n.setParent(Nil)
	n.setNextSibling(Nil)
	if b.head.IsNil() {
		b.head = n
		b.tail = n
		return
	}
	b.tail.setNextSibling(n)
	b.tail = n
}

// SplitPerson partitions root's children into PersonBuckets, clearing
// root's own child chain in the process. root must be a Person record
// root or a node previously built the same way (the function only looks
// at tags, so it tolerates being called on any node).
func SplitPerson(root Ref) PersonBuckets {
	var names, refns, sex, body, famc, fams chainBuilder
	children := collectChildren(root)
	root.setFirstChild(Nil)
	for _, c := range children {
		switch c.Tag() {
		case "NAME":
			names.add(c)
		case "REFN":
			refns.add(c)
		case "SEX":
			sex.add(c)
		case "FAMC":
			famc.add(c)
		case "FAMS":
			fams.add(c)
		default:
			body.add(c)
		}
	}
	return PersonBuckets{
		Names: names.head,
		Refns: refns.head,
		Sex:   sex.head,
		Body:  body.head,
		Famc:  famc.head,
		Fams:  fams.head,
	}
}

// JoinPerson reattaches PersonBuckets to root in the canonical order:
// names, refns, sex, body, famc, fams. Passing back the exact buckets a
// prior SplitPerson produced keeps the order within each bucket, but the
// buckets themselves are always laid out in that canonical order, so the
// original sibling order comes back only if the children were already
// grouped that way; interleaved children end up regrouped.
func JoinPerson(root Ref, b PersonBuckets) {
	joinChains(root, b.Names, b.Refns, b.Sex, b.Body, b.Famc, b.Fams)
}

// SplitFamily partitions root's children into FamilyBuckets, the family
// analogue of SplitPerson.
func SplitFamily(root Ref) FamilyBuckets {
	var refns, husb, wife, chil, rest chainBuilder
	children := collectChildren(root)
	root.setFirstChild(Nil)
	for _, c := range children {
		switch c.Tag() {
		case "REFN":
			refns.add(c)
		case "HUSB":
			husb.add(c)
		case "WIFE":
			wife.add(c)
		case "CHIL":
			chil.add(c)
		default:
			rest.add(c)
		}
	}
	return FamilyBuckets{
		Refns: refns.head,
		Husb:  husb.head,
		Wife:  wife.head,
		Chil:  chil.head,
		Rest:  rest.head,
	}
}

// JoinFamily reattaches FamilyBuckets to root in the canonical order:
// refns, husb, wife, chil, rest.
func JoinFamily(root Ref, b FamilyBuckets) {
	joinChains(root, b.Refns, b.Husb, b.Wife, b.Chil, b.Rest)
}

// collectChildren snapshots root's current child chain into a slice so
// split can walk it safely while rewriting sibling links.
func collectChildren(root Ref) []Ref {
	var out []Ref
	for c := root.FirstChild(); !c.IsNil(); c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// joinChains concatenates the given chains in order and installs the
// result as root's child chain, reparenting every node to root.
func joinChains(root Ref, chains ...Ref) {
	root.setFirstChild(Nil)
	var tail Ref
	for _, head := range chains {
		if head.IsNil() {
			continue
		}
		for n := head; !n.IsNil(); n = n.NextSibling() {
			n.setParent(root)
		}
		if root.FirstChild().IsNil() {
			root.setFirstChild(head)
		} else {
			tail.setNextSibling(head)
		}
		tail = chainTail(head)
	}
}

// AppendSibling appends node to the end of a detached sibling chain
// (head may be Nil for an empty chain) and returns the chain's head. It's
// the primitive the structural edit operators (add child/spouse to
// family) use to grow a split-out FAMC/FAMS/HUSB/WIFE/CHIL bucket before
// Join puts it back.
func AppendSibling(head, node Ref) Ref {
	node.setNextSibling(Nil)
	if head.IsNil() {
		return node
	}
	chainTail(head).setNextSibling(node)
	return head
}

func chainTail(head Ref) Ref {
	n := head
	for {
		next := n.NextSibling()
		if next.IsNil() {
			return n
		}
		n = next
	}
}
