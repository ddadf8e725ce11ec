package cmd

import (
	"fmt"
	"os"

	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
	"github.com/cacack/gedcom-engine/ingest"
)

// loadAllRecords is loadDatabase's sibling for callers that need every
// level-0 record, HEAD, TRLR, and unkeyed records included, not just
// the ones the Database indexes. randomize-keys needs the full list so it
// can write the document back out intact.
func loadAllRecords(path string) (*gnode.Store, *database.Database, []database.ParsedRecord, error) {
	resolved, err := resolveFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	f, err := os.Open(resolved) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening %s: %w", resolved, err)
	}
	defer f.Close()

	store := gnode.NewStore()
	var records []database.ParsedRecord
	captured := func(yield func(database.ParsedRecord, error) bool) {
		for rec, err := range ingest.Records(store, f, resolved) {
			records = append(records, rec)
			if !yield(rec, err) {
				return
			}
		}
	}

	db := database.NewWithLogger(newLogger(logLevel, logFormat))
	if err := db.Ingest(captured); err != nil {
		return nil, nil, nil, fmt.Errorf("ingesting %s: %w", resolved, err)
	}
	return store, db, records, nil
}

// loadDatabase resolves, opens, and ingests the GEDCOM file at path,
// returning the populated database and the node store backing it (render
// and randomize-keys need direct store/tree access the Database doesn't
// expose).
func loadDatabase(path string) (*gnode.Store, *database.Database, error) {
	resolved, err := resolveFile(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(resolved) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", resolved, err)
	}
	defer f.Close()

	store := gnode.NewStore()
	db := database.NewWithLogger(newLogger(logLevel, logFormat))
	if err := db.Ingest(ingest.Records(store, f, resolved)); err != nil {
		return nil, nil, fmt.Errorf("ingesting %s: %w", resolved, err)
	}
	return store, db, nil
}
