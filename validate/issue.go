package validate

import "fmt"

// Kind enumerates the five error classes the core recognizes.
// SyntaxError is never produced by this package, it's reserved for
// errors surfaced unchanged from an external parser, but it's part of
// the enum so a caller merging logs from both layers has one Kind space.
type Kind int

const (
	// SyntaxError comes from an external parser and is surfaced unchanged.
	SyntaxError Kind = iota
	// LinkageError is a dangling pointer, a sex/role mismatch, or a
	// missing back-link.
	LinkageError
	// StructuralError is an empty family or a duplicate child-in-family.
	StructuralError
	// DuplicateKeyKind is a record-index insertion collision.
	DuplicateKeyKind
	// InternalInvariant is a programming-bug assertion failure. No code
	// in this package produces it.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case LinkageError:
		return "LinkageError"
	case StructuralError:
		return "StructuralError"
	case DuplicateKeyKind:
		return "DuplicateKey"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error codes: one constant per distinct failure the validator can
// report.
const (
	CodeFAMCDangling     = "FAMC_DANGLING"
	CodeFAMSDangling     = "FAMS_DANGLING"
	CodeChildNotFound    = "CHILD_NOT_FOUND"
	CodeDuplicateChild   = "DUPLICATE_CHILD"
	CodeSpouseSexUnknown = "SPOUSE_SEX_UNKNOWN"
	CodeSpouseNotLinked  = "SPOUSE_NOT_LINKED"
	CodeEmptyFamily      = "EMPTY_FAMILY"
	CodeBackLinkMissing  = "BACK_LINK_MISSING"
)

// Issue is one entry in the error log: kind, provenance, a code, and a
// human message, plus the record key the issue is about.
type Issue struct {
	Kind    Kind
	Code    string
	Segment string
	Line    int
	XRef    string
	Message string
}

func (i *Issue) Error() string {
	if i.Line > 0 {
		return fmt.Sprintf("[%s/%s] %s line %d: %s (%s)", i.Kind, i.Code, i.Segment, i.Line, i.Message, i.XRef)
	}
	return fmt.Sprintf("[%s/%s] %s: %s", i.Kind, i.Code, i.Message, i.XRef)
}

// Log accumulates Issues. Validation never short-circuits on an Issue; it
// only accumulates.
type Log struct {
	issues []*Issue
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Add appends an issue to the log.
func (l *Log) Add(issue *Issue) {
	l.issues = append(l.issues, issue)
}

// Len returns the number of accumulated issues.
func (l *Log) Len() int {
	return len(l.issues)
}

// Issues returns every accumulated issue, in the order they were added.
func (l *Log) Issues() []*Issue {
	return l.issues
}

// OK reports whether the log is empty, meaning Run found nothing to
// report.
func (l *Log) OK() bool {
	return len(l.issues) == 0
}
