// Package ingest turns a GEDCOM byte stream into the stream of record
// trees database.Database.Ingest expects. It is deliberately a thin
// lexer plus a level-stack tree builder, no typed Individual/Family
// decoding, since that belongs to an external parser, not the core.
package ingest
