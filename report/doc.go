// Package report renders validate.Log and partition results into the
// serializable shape gedcomctl writes out as YAML, as structs with yaml
// tags.
package report
