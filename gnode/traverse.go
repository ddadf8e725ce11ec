package gnode

import "iter"

// Children yields the direct children of root in document order.
func Children(root Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for c := root.FirstChild(); !c.IsNil(); c = c.NextSibling() {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildrenWithTag yields the direct children of root whose tag equals tag.
func ChildrenWithTag(root Ref, tag string) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for c := root.FirstChild(); !c.IsNil(); c = c.NextSibling() {
			if c.Tag() == tag && !yield(c) {
				return
			}
		}
	}
}

// Traverse yields every descendant of root in document (pre-order) order.
// root itself is not yielded.
func Traverse(root Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		var walk func(Ref) bool
		walk = func(n Ref) bool {
			for c := n.FirstChild(); !c.IsNil(); c = c.NextSibling() {
				if !yield(c) {
					return false
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}

// FirstChildWithTag returns the first direct child of root tagged tag, or
// Nil if there is none.
func FirstChildWithTag(root Ref, tag string) Ref {
	for c := range ChildrenWithTag(root, tag) {
		return c
	}
	return Nil
}
