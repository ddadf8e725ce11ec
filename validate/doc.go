// Package validate checks a database's referential and structural
// integrity: every FAMC/FAMS pointer resolves and is reciprocated, every
// family has at least one member, and spouse roles agree with recorded
// sex. It never stops at the first problem, it accumulates every issue
// it finds into a Log and keeps going, the way the source's
// validatePerson/validateFamily run unconditionally over the whole
// database rather than failing fast.
package validate
