package database

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/cacack/gedcom-engine/gnode"
	"github.com/cacack/gedcom-engine/keys"
)

// Database aggregates the record index, the name index, and the
// provenance of the most recently ingested file segment. It owns every
// Node arena reachable from its records; Sequences and other query
// results built against it hold only record keys, not node references, so
// the Database must outlive them.
type Database struct {
	Records     *RecordIndex
	Names       *NameIndex
	LastSegment string
	Logger      *zap.SugaredLogger
}

// New creates an empty Database with a no-op logger.
func New() *Database {
	return NewWithLogger(zap.NewNop().Sugar())
}

// NewWithLogger creates an empty Database that logs through logger, the
// way a context object is supposed to replace a process-wide debug flag:
// passed in explicitly, never reached for as a package global.
func NewWithLogger(logger *zap.SugaredLogger) *Database {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Database{
		Records: NewRecordIndex(),
		Names:   NewNameIndex(),
		Logger:  logger,
	}
}

// ParsedRecord is one unit of the ingestion contract: a fully built
// record-root Node tree plus where it came from, so the database can
// report provenance on linkage errors later.
type ParsedRecord struct {
	Root    gnode.Ref
	Segment string
	Line    int
}

// Ingest consumes a stream of parsed record trees, registering every
// record with a non-empty key into the RecordIndex and, for Person
// records, walking their NAME children into the NameIndex. It stops and
// returns the first error encountered, either one the producer yielded,
// or a *DuplicateKeyError from the index.
func (db *Database) Ingest(records iter.Seq2[ParsedRecord, error]) error {
	for rec, err := range records {
		if err != nil {
			return fmt.Errorf("ingesting record: %w", err)
		}
		if rec.Root.Key() == "" {
			continue // unkeyed root (HEAD/TRLR-equivalent); nothing to index
		}
		if err := db.Records.Insert(rec.Root.Key(), rec.Root, rec.Segment, rec.Line); err != nil {
			return err
		}
		db.LastSegment = rec.Segment
		if rt, ok := rec.Root.RecordType(); ok && rt == gnode.Person {
			db.indexPersonNames(rec.Root)
		}
	}
	return nil
}

func (db *Database) indexPersonNames(person gnode.Ref) {
	for nameNode := range gnode.ChildrenWithTag(person, "NAME") {
		db.Logger.Debugw("indexing name", "person", person.Key(), "name", nameNode.Value())
		db.Names.Insert(keys.Canonicalize(nameNode.Value()), person.Key())
	}
}

// FirstName returns the value of person's first NAME child, or "" if it
// has none. Used to resolve a Sequence element's display name (§4.6).
func FirstName(person gnode.Ref) string {
	n := gnode.FirstChildWithTag(person, "NAME")
	if n.IsNil() {
		return ""
	}
	return n.Value()
}

// Sex returns the value of person's SEX child, or "" if absent.
func Sex(person gnode.Ref) string {
	n := gnode.FirstChildWithTag(person, "SEX")
	if n.IsNil() {
		return ""
	}
	return n.Value()
}
