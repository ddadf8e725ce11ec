// Package render is the inverse of ingest: it walks a gnode.Ref tree in
// document order and writes GEDCOM lines back out, splitting long values
// into CONC/CONT continuation lines the standard GEDCOM way.
package render
