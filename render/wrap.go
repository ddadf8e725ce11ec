package render

import "strings"

// rawLine is one physical GEDCOM line ready to be written: level, an
// optional xref (only ever set on a record root's own line), tag, value.
type rawLine struct {
	level int
	xref  string
	tag   string
	value string
}

// splitValue turns a node's tag/value into the physical lines needed to
// represent it: the primary line at level, CONC lines for any segment
// that runs past the configured width, and CONT lines for each embedded
// newline in value.
func splitValue(level int, xref, tag, value string, opts *Options) []rawLine {
	if value == "" {
		return []rawLine{{level: level, xref: xref, tag: tag, value: ""}}
	}

	physicalLines := strings.Split(value, "\n")

	first := splitForLength(physicalLines[0], opts)
	out := make([]rawLine, 0, len(physicalLines))
	out = append(out, rawLine{level: level, xref: xref, tag: tag, value: first[0]})
	for _, seg := range first[1:] {
		out = append(out, rawLine{level: level + 1, tag: "CONC", value: seg})
	}

	for _, pl := range physicalLines[1:] {
		segs := splitForLength(pl, opts)
		out = append(out, rawLine{level: level + 1, tag: "CONT", value: segs[0]})
		for _, seg := range segs[1:] {
			out = append(out, rawLine{level: level + 1, tag: "CONC", value: seg})
		}
	}
	return out
}

// splitForLength splits a single physical line into segments no longer
// than opts' max length, preferring to break on a word boundary.
func splitForLength(line string, opts *Options) []string {
	if opts.wrapDisabled() {
		return []string{line}
	}

	maxLen := opts.effectiveMaxLineLength()
	if len(line) <= maxLen {
		return []string{line}
	}

	var segments []string
	remaining := line
	for len(remaining) > maxLen {
		splitAt := wordBoundary(remaining, maxLen)
		segments = append(segments, remaining[:splitAt])
		remaining = remaining[splitAt:]
	}
	if remaining != "" {
		segments = append(segments, remaining)
	}
	return segments
}

// wordBoundary finds where to split line at or before maxLen, preferring
// the last space so a word isn't torn in half.
func wordBoundary(line string, maxLen int) int {
	if len(line) <= maxLen {
		return len(line)
	}
	if lastSpace := strings.LastIndex(line[:maxLen], " "); lastSpace > 0 {
		return lastSpace + 1
	}
	return maxLen
}
