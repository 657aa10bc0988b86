package rosterfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kjk/roster/roster"
	"github.com/kjk/roster/textutil"
)

// Reader reads records from a roster file. Per-line problems (bad field
// count, failed validation, duplicate roll) are not errors: the line is
// skipped and a warning recorded, matching the permissive loader this
// format comes from.
type Reader struct {
	r *bufio.Reader

	// Record is available after Next() returns true.
	// Over-written by the next Next().
	Record roster.Record

	// Line is the 1-based number of the line Record came from
	Line int

	// rolls accepted so far in this read, first occurrence wins
	seen map[int]struct{}

	warnings []string

	err error

	// true if reached end of file with io.EOF
	done bool
}

// NewReader creates a new reader
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:    bufio.NewReader(r),
		seen: map[int]struct{}{},
	}
}

// Done returns true if we're finished reading
func (r *Reader) Done() bool {
	return r.err != nil || r.done
}

// Next advances to the next valid record, returns false when there are
// no more. If it returns false, check Err().
func (r *Reader) Next() bool {
	for {
		if r.Done() {
			return false
		}
		line, err := r.r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				r.done = true
				if line == "" {
					return false
				}
				// last line without trailing newline, still process it
			} else {
				r.err = err
				return false
			}
		}
		r.Line++
		s := strings.TrimRight(line, "\r\n")
		if s == "" || s[0] == '#' {
			continue
		}

		fields := strings.SplitN(s, "|", 3)
		if len(fields) < 3 {
			r.warnf("invalid format at line %d", r.Line)
			continue
		}
		// permissive integer scan, trailing garbage after the digits is
		// tolerated to stay compatible with files written by hand
		roll, _ := textutil.ParseIntPrefix(fields[0])
		marks, _ := textutil.ParseIntPrefix(fields[1])
		name := strings.TrimSpace(fields[2])

		rec := roster.Record{Roll: roll, Name: name, Marks: marks}
		if !rec.Valid() {
			r.warnf("invalid data at line %d (skipped)", r.Line)
			continue
		}
		if _, ok := r.seen[roll]; ok {
			r.warnf("duplicate roll %d at line %d (skipped)", roll, r.Line)
			continue
		}
		r.seen[roll] = struct{}{}
		r.Record = rec
		return true
	}
}

func (r *Reader) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the warnings accumulated so far, one per skipped line
func (r *Reader) Warnings() []string {
	return r.warnings
}

// Err returns the error from the last Next(). io.EOF is swallowed.
func (r *Reader) Err() error {
	return r.err
}
