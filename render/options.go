package render

// DefaultMaxLineLength keeps rendered lines comfortably under the 255
// character limit GEDCOM readers expect, leaving room for the level,
// xref, and tag overhead on each line.
const DefaultMaxLineLength = 248

// Options configures how Write formats lines.
type Options struct {
	// LineEnding is appended after every line. Defaults to "\n".
	LineEnding string

	// MaxLineLength is the longest a value may be before it is split
	// into CONC continuation lines. 0 means DefaultMaxLineLength.
	MaxLineLength int

	// DisableLineWrap turns off CONC splitting regardless of value
	// length, writing every physical line verbatim.
	DisableLineWrap bool
}

// DefaultOptions returns the options Write uses when none are given.
func DefaultOptions() *Options {
	return &Options{
		LineEnding:    "\n",
		MaxLineLength: DefaultMaxLineLength,
	}
}

func (o *Options) lineEnding() string {
	if o == nil || o.LineEnding == "" {
		return "\n"
	}
	return o.LineEnding
}

func (o *Options) effectiveMaxLineLength() int {
	if o == nil || o.MaxLineLength <= 0 {
		return DefaultMaxLineLength
	}
	return o.MaxLineLength
}

func (o *Options) wrapDisabled() bool {
	return o != nil && o.DisableLineWrap
}
