package ingest

import (
	"bufio"
	"io"
	"iter"

	"github.com/cacack/gedcom-engine/charset"
	"github.com/cacack/gedcom-engine/database"
	"github.com/cacack/gedcom-engine/gnode"
)

// Records reads a GEDCOM file from r, allocating every node into store,
// and yields one database.ParsedRecord per level-0 record, tagged with
// segment and the 1-based line number its level-0 line started at. r is
// wrapped in charset.NewReader first, so BOM-prefixed UTF-16 and bare
// UTF-8 inputs both work. On a lexing or tree-building error, the
// iterator yields the error and stops.
func Records(store *gnode.Store, r io.Reader, segment string) iter.Seq2[database.ParsedRecord, error] {
	return func(yield func(database.ParsedRecord, error) bool) {
		scanner := bufio.NewScanner(charset.NewReader(r))
		lineNumber := 0
		var current []*line

		emit := func() bool {
			if len(current) == 0 {
				return true
			}
			root, err := buildTree(store, current)
			if err != nil {
				yield(database.ParsedRecord{}, err)
				return false
			}
			rec := database.ParsedRecord{Root: root, Segment: segment, Line: current[0].lineNumber}
			current = nil
			return yield(rec, nil)
		}

		for scanner.Scan() {
			lineNumber++
			parsed, err := parseLine(lineNumber, scanner.Text())
			if err != nil {
				yield(database.ParsedRecord{}, err)
				return
			}
			if parsed.level == 0 {
				if !emit() {
					return
				}
				current = []*line{parsed}
				continue
			}
			if current == nil {
				yield(database.ParsedRecord{}, newLexError(lineNumber, "subordinate line before any level-0 record", scanner.Text()))
				return
			}
			current = append(current, parsed)
		}
		if err := scanner.Err(); err != nil {
			yield(database.ParsedRecord{}, err)
			return
		}
		emit()
	}
}
