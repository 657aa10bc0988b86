package rosterfile

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/kjk/roster/fileutil"
	"github.com/kjk/roster/roster"
	"github.com/kjk/roster/textutil"
)

// Marshal serializes r to the roster file format in memory
func Marshal(r *roster.Roster) []byte {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteHeader(r.Len())
	for _, rec := range r.Records() {
		w.WriteRecord(rec)
	}
	w.Flush()
	return buf.Bytes()
}

// UnsavedDiff returns a unified diff between the last saved file and
// what Save would write now. Empty string means no divergence. A missing
// file diffs against empty, so a never-saved roster shows as all-added.
func UnsavedDiff(r *roster.Roster) (string, error) {
	path := r.LastPath
	if path == "" {
		path = DefaultPath
	}
	saved, err := fileutil.ReadFileMaybeCompressed(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		saved = nil
	}
	saved = textutil.NormalizeNewlines(saved)
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(saved)),
		B:        difflib.SplitLines(string(Marshal(r))),
		FromFile: path,
		ToFile:   "unsaved",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
