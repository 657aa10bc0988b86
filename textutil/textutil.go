package textutil

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MaxNameLen is the longest name we keep; longer names are truncated
	MaxNameLen = 100
	// DefaultName is used when a name is empty after trimming
	DefaultName = "Unnamed"
)

// ParseIntPrefix parses a leading integer from s the way C's strtol does:
// skips leading whitespace, accepts an optional sign, reads digits and
// ignores whatever follows. Returns false if there are no digits.
// "12abc" => 12, " -7|x" => -7, "abc" => 0, false
func ParseIntPrefix(s string) (int, bool) {
	i := 0
	n := len(s)
	for i < n && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, false
	}
	v, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil {
		// out of range, clamp like strtol
		if s[start] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(v), true
}

// ParseIntStrict parses s as a whole-string integer, leading/trailing
// whitespace allowed. Unlike ParseIntPrefix it rejects trailing garbage.
// Used for interactive prompts where "12abc" should re-ask.
func ParseIntStrict(s string) (int, bool) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeName trims s, substitutes DefaultName for an empty result and
// truncates at MaxNameLen bytes. The bool reports whether truncation
// happened so callers can tell the user.
func NormalizeName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultName, false
	}
	if len(s) > MaxNameLen {
		return s[:MaxNameLen], true
	}
	return s, false
}

// NormalizeNewlinesInPlace changes CRLF (Windows) and
// CR (Mac) to LF (Unix)
// Optimized for speed, modifies data in place
func NormalizeNewlinesInPlace(d []byte) []byte {
	wi := 0
	n := len(d)
	for i := 0; i < n; i++ {
		c := d[i]
		// 13 is CR
		if c != 13 {
			d[wi] = c
			wi++
			continue
		}
		// replace CR (mac / win) with LF (unix)
		d[wi] = 10
		wi++
		if i < n-1 && d[i+1] == 10 {
			// this was CRLF, so skip the LF
			i++
		}
	}
	return d[:wi]
}

// NormalizeNewlines is like NormalizeNewlinesInPlace but
// slower because it makes a copy of data
func NormalizeNewlines(d []byte) []byte {
	d = append([]byte{}, d...)
	return NormalizeNewlinesInPlace(d)
}
