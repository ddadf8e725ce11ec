// Package lineage provides the FAMC/FAMS/HUSB/WIFE/CHIL traversal
// iterators every higher layer builds on: given a person or family root
// and the record index to resolve pointers against, yield the related
// records in document order. Unresolved pointers are silently skipped ,
// reporting unresolved FAMC/FAMS pointers is the validator's job (package
// validate; it does not report unresolved HUSB/WIFE/CHIL pointers), not this
// package's; these iterators just need to stay correct in the face of
// them.
package lineage
