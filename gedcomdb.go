// Package gedcomdb is a single-import entry point over the separate
// gnode/database/validate/sequence/partition/ingest/render packages. It
// re-exports the types and functions most callers reach for first; power
// users needing custom wiring import the underlying packages directly.
//
// # Quick start
//
// Load a file into a database:
//
//	store := gedcomdb.NewStore()
//	db := gedcomdb.New()
//	f, _ := os.Open("family.ged")
//	err := db.Ingest(gedcomdb.Records(store, f, "family.ged"))
//
// Validate it:
//
//	log, stats := gedcomdb.Validate(db)
//	if !log.OK() {
//	    fmt.Println(log.Issues())
//	}
//
// Partition it into family trees:
//
//	components := gedcomdb.Partition(db)
//
// For relationship algebra, ad hoc edits, or a custom render pass, import
// sequence, database, and render directly.
package gedcomdb

import (
	"io"
	"iter"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
	"github.com/cacack/gedcom-engine/ingest"
	"github.com/cacack/gedcom-engine/partition"
	"github.com/cacack/gedcom-engine/render"
	"github.com/cacack/gedcom-engine/sequence"
	"github.com/cacack/gedcom-engine/validate"
)

// Type re-exports for single-import convenience.
type (
	// Store is the node arena a Database's records live in.
	Store = gnode.Store

	// Ref is a handle to one node in a Store.
	Ref = gnode.Ref

	// Database aggregates the record index, name index, and logger built
	// up by Ingest.
	Database = database.Database

	// Sequence is an ordered collection of record keys with the
	// relationship-algebra operators in the sequence package.
	Sequence = sequence.Sequence

	// ValidationLog accumulates the issues validate.Run finds.
	ValidationLog = validate.Log

	// ValidationStats summarizes a validate.Run pass.
	ValidationStats = validate.Stats
)

// NewStore creates an empty node arena.
func NewStore() *Store {
	return gnode.NewStore()
}

// New creates an empty Database with a no-op logger.
func New() *Database {
	return database.New()
}

// Records returns the iterator Database.Ingest expects: every level-0
// record tree lexed and built from r, tagged with segment.
//
// For custom line-level error handling, import the ingest package
// directly.
func Records(store *Store, r io.Reader, segment string) iter.Seq2[database.ParsedRecord, error] {
	return ingest.Records(store, r, segment)
}

// Validate checks db's referential and structural integrity, returning
// the accumulated issue log and summary stats.
//
// For per-record validation hooks, import the validate package directly.
func Validate(db *Database) (*ValidationLog, ValidationStats) {
	return validate.Run(db)
}

// Partition decomposes db's person+family subgraph into connected
// components, one Sequence of persons per component.
//
// For per-person ancestor/descendant counts, use partition.Connections
// directly.
func Partition(db *Database) []*Sequence {
	return partition.Partition(db)
}

// Write writes root and its full subtree back out as GEDCOM text.
//
// For line-wrap and line-ending options, use render.WriteWithOptions
// directly.
func Write(w io.Writer, root Ref) error {
	return render.Write(w, root)
}
