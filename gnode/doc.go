// Package gnode defines the node-tree representation that underlies every
// record in the database: individuals, families, sources, events, and
// anything else a GEDCOM-shaped input can produce.
//
// A Node is deliberately minimal, a tag, an optional value, an optional
// record key, and links to its parent, first child, and next sibling.
// Nodes live in a Store (an arena); callers hold Refs, which are cheap,
// comparable handles into that arena rather than raw pointers. This avoids
// the double-free and dangling-pointer hazards of the hand-managed node
// graphs genealogy tools have traditionally used, while keeping the same
// sibling-chain shape: children of a node form an ordered singly-linked
// list, and a node's parent pointer closes the graph into a cycle that a
// straightforward ownership model (Store owns, Ref references) resolves
// without any reference counting.
package gnode
