// Package database aggregates the record index and name index into the
// Database type that every other package in this module is built against.
// It owns every Node arena, record root, and index; Sequences and other
// query results hold only non-owning references (record keys) back into
// it, so the Database must outlive anything built from it.
package database
