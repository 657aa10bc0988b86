package rosterfile

import (
	"fmt"
	"os"

	"github.com/kjk/roster/fileutil"
	"github.com/kjk/roster/roster"
)

// DefaultPath is the file used when the caller has no other target
const DefaultPath = "students.txt"

// Save writes r to path, truncating whatever was there. On success it
// records path as r.LastPath and clears r.Modified.
//
// The write is not atomic: a crash mid-write can leave a truncated file.
// Accepted limitation; callers who care can keep backups
// (fileutil.BackupFile).
func Save(r *roster.Roster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	w := NewWriter(f)
	w.WriteHeader(r.Len())
	for _, rec := range r.Records() {
		w.WriteRecord(rec)
	}
	err = w.Flush()
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	r.LastPath = path
	r.Modified = false
	return nil
}

// Load replaces r's contents with the records in path. The current
// records are discarded unconditionally, even if the file turns out
// empty or fully invalid; callers with unsaved state should check
// r.Modified first.
//
// Returns the number of records loaded and the per-line warnings for
// skipped lines. Fails only if the file can't be opened or a read error
// occurs mid-stream; malformed lines are warnings, not errors.
//
// Files ending in .gz, .bz2, .zst or .br are decompressed transparently.
func Load(r *roster.Roster, path string) (int, []string, error) {
	rc, err := fileutil.OpenMaybeCompressed(path)
	if err != nil {
		return 0, nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer rc.Close()

	r.Clear()
	rd := NewReader(rc)
	n := 0
	for rd.Next() {
		// the reader already validated and deduped
		if err := r.Add(rd.Record); err != nil {
			return n, rd.Warnings(), fmt.Errorf("load %s: %w", path, err)
		}
		n++
	}
	if err := rd.Err(); err != nil {
		return n, rd.Warnings(), fmt.Errorf("load %s: %w", path, err)
	}
	r.LastPath = path
	r.Modified = false
	return n, rd.Warnings(), nil
}
