// Package sequence implements the ordered, optionally-unique collection
// of person record-keys that the query layer is built from, plus the
// graph-closure and set-algebraic operators over it (ancestors,
// descendants, siblings, union, intersect, difference). A Sequence holds
// only record keys and a reference to its owning database, never node
// references, so it stays cheap to copy and safe to hold onto across
// calls, as long as the database it was built against is still alive.
package sequence
