// Package keys implements the two canonicalisation functions the rest of
// the database relies on for identity: the record-key comparator (so
// "@I2@" sorts before "@I10@") and the display-name-to-name-key function
// the name index uses for lookup.
package keys
