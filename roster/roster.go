package roster

import "fmt"

// Record is one student: roll number (the unique key within a Roster),
// name and marks.
type Record struct {
	Roll  int    `json:"roll"`
	Name  string `json:"name"`
	Marks int    `json:"marks"`
}

// Valid returns true if the record satisfies the roster invariants:
// positive roll, marks in [0,100]
func (r Record) Valid() bool {
	return r.Roll > 0 && r.Marks >= 0 && r.Marks <= 100
}

// Roster is an ordered collection of records with unique roll numbers.
// The order is meaningful: it reflects insertion or last-sort order and
// is what gets persisted.
//
// Not safe for concurrent use. A caller embedding it in a concurrent
// host must serialize all access.
type Roster struct {
	records []Record

	// Modified is true iff the in-memory records diverge from the last
	// successfully loaded/saved file
	Modified bool

	// LastPath is the file last used for load or save, the default
	// target for subsequent saves
	LastPath string
}

// New returns an empty roster
func New() *Roster {
	return &Roster{}
}

func (r *Roster) Len() int {
	return len(r.records)
}

// At returns a copy of the record at position i. Panics if out of bounds,
// like slice indexing.
func (r *Roster) At(i int) Record {
	return r.records[i]
}

// Records returns the backing slice. Valid only until the next mutating
// call (Add, RemoveAt, ModifyAt, Sort, Clear or a load); don't retain it.
func (r *Roster) Records() []Record {
	return r.records
}

// Add appends rec at the end. Fails with ErrInvalidInput if the record
// doesn't validate and with ErrDuplicate if a record with the same roll
// already exists. The roster is unchanged on failure.
func (r *Roster) Add(rec Record) error {
	if !rec.Valid() {
		return fmt.Errorf("add roll %d marks %d: %w", rec.Roll, rec.Marks, ErrInvalidInput)
	}
	if _, err := r.FindByRoll(rec.Roll); err == nil {
		return fmt.Errorf("add roll %d: %w", rec.Roll, ErrDuplicate)
	}
	r.records = append(r.records, rec)
	r.Modified = true
	return nil
}

// FindByRoll returns the position of the record with the given roll.
// Linear scan; the target scale is a classroom, not a database.
func (r *Roster) FindByRoll(roll int) (int, error) {
	for i, rec := range r.records {
		if rec.Roll == roll {
			return i, nil
		}
	}
	return -1, fmt.Errorf("roll %d: %w", roll, ErrNotFound)
}

// RemoveAt deletes the record at position i, shifting later records left
// so relative order of survivors is preserved.
func (r *Roster) RemoveAt(i int) error {
	if i < 0 || i >= len(r.records) {
		return fmt.Errorf("remove at %d of %d: %w", i, len(r.records), ErrInvalidInput)
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	r.Modified = true
	return nil
}

// ModifyAt replaces all three fields of the record at position i.
// Either all fields change or none: fails with ErrInvalidInput on a bad
// position or invalid values, with ErrDuplicate if roll collides with a
// different record.
func (r *Roster) ModifyAt(i int, roll int, name string, marks int) error {
	if i < 0 || i >= len(r.records) {
		return fmt.Errorf("modify at %d of %d: %w", i, len(r.records), ErrInvalidInput)
	}
	rec := Record{Roll: roll, Name: name, Marks: marks}
	if !rec.Valid() {
		return fmt.Errorf("modify roll %d marks %d: %w", roll, marks, ErrInvalidInput)
	}
	if j, err := r.FindByRoll(roll); err == nil && j != i {
		return fmt.Errorf("modify roll %d: %w", roll, ErrDuplicate)
	}
	r.records[i] = rec
	r.Modified = true
	return nil
}

// Clear discards all records. Used by load before reading a file; the
// flags are the caller's to manage afterwards.
func (r *Roster) Clear() {
	r.records = r.records[:0]
	r.Modified = true
}
