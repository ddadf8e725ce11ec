package keys

import "strings"

// surnameSep is the internal separator placed between the folded surname
// and the given names in a canonical name key. It can't appear in a
// GEDCOM name value, so it's safe as a structural marker.
const surnameSep = "\x00"

// Canonicalize turns a display name into its canonical name-key: trimmed,
// ASCII-lowercased (non-ASCII bytes pass through untouched), whitespace
// runs collapsed to one space, and, if the name carries a "/surname/"
// segment, reordered to "surname\x00givens" so records are bucketed by
// surname first. A surname delimiter missing its closing slash (as in a
// leading-wildcard search pattern with the trailing slash dropped) is
// still recognised: everything after the lone slash is taken as surname.
func Canonicalize(name string) string {
	s := strings.TrimSpace(name)
	s = lowerASCII(s)
	s = collapseWhitespace(s)
	if surname, givens, ok := splitSurname(s); ok {
		return surname + surnameSep + givens
	}
	return s
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// splitSurname extracts a "/surname/" segment from an already-normalised
// name string. ok is false if there's no '/' at all.
func splitSurname(s string) (surname, givens string, ok bool) {
	first := strings.IndexByte(s, '/')
	if first == -1 {
		return "", "", false
	}
	rest := s[first+1:]
	second := strings.IndexByte(rest, '/')
	var surnamePart, before, after string
	before = s[:first]
	if second == -1 {
		// Unterminated delimiter: everything past the slash is surname.
		surnamePart = rest
		after = ""
	} else {
		surnamePart = rest[:second]
		after = rest[second+1:]
	}
	givens = collapseWhitespace(before + " " + after)
	surname = collapseWhitespace(surnamePart)
	return surname, givens, true
}

// MatchMode describes how a wildcard pattern's literal remainder should be
// compared against a canonical name key.
type MatchMode int

const (
	// MatchExact requires the name key to equal the literal exactly.
	MatchExact MatchMode = iota
	// MatchPrefix requires the name key to start with the literal
	// (produced by a trailing '*').
	MatchPrefix
	// MatchSuffix requires the name key to end with the literal
	// (produced by a leading '*').
	MatchSuffix
	// MatchContains is a fallback for a '*' that lands in the middle of
	// the canonical pattern; substring match is the least surprising
	// behavior.
	MatchContains
)

// HasWildcard reports whether a name search pattern carries a '*'.
func HasWildcard(pattern string) bool {
	return strings.ContainsRune(pattern, '*')
}

// PatternKey canonicalises a wildcard search pattern the same way
// Canonicalize does (the '*' rides through untouched, since it's neither
// an ASCII letter nor whitespace), then reports the literal remainder and
// the match mode implied by where the '*' landed after surname-folding.
// A leading '*' in canonical-key space means "any prefix", so the
// remaining literal must match as a suffix, and a trailing '*' means
// "any suffix", matched as a prefix. This is why "*/Grenda" (wildcard
// given names, fixed surname) ends up testing canonical-key PREFIX
// equality: folding reorders the fixed surname to the front of the key.
func PatternKey(pattern string) (literal string, mode MatchMode) {
	canonical := Canonicalize(pattern)
	idx := strings.IndexByte(canonical, '*')
	switch {
	case idx == -1:
		return canonical, MatchExact
	case idx == 0:
		return canonical[1:], MatchSuffix
	case idx == len(canonical)-1:
		return canonical[:idx], MatchPrefix
	default:
		return canonical[:idx] + canonical[idx+1:], MatchContains
	}
}

// MatchPattern reports whether nameKey satisfies the literal/mode pair
// PatternKey produced.
func MatchPattern(literal string, mode MatchMode, nameKey string) bool {
	switch mode {
	case MatchPrefix:
		return strings.HasPrefix(nameKey, literal)
	case MatchSuffix:
		return strings.HasSuffix(nameKey, literal)
	case MatchContains:
		return strings.Contains(nameKey, literal)
	default:
		return nameKey == literal
	}
}
