package rosterfile

import (
	"bufio"
	"io"
	"strconv"

	"github.com/kjk/roster/roster"
)

/*
Serialize/deserialize a roster in a line-oriented, human-editable format:

	# Student Record System Data File
	# Format: roll|marks|name
	# Total records: 2
	7|91|Ada
	12|40|Grace

Lines starting with '#' and empty lines are ignored on read. There is no
escaping: a name containing '|' or a newline will corrupt parsing on
reload. Documented constraint, not handled.
*/

// Writer serializes records to w in the roster file format
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// WriteHeader writes the three fixed comment lines that start every
// roster file. count is the number of records that will follow.
func (w *Writer) WriteHeader(count int) error {
	w.w.WriteString("# Student Record System Data File\n")
	w.w.WriteString("# Format: roll|marks|name\n")
	w.w.WriteString("# Total records: ")
	w.w.WriteString(strconv.Itoa(count))
	_, err := w.w.WriteString("\n")
	return err
}

// WriteRecord writes one record as "roll|marks|name\n". An empty name
// becomes an empty third field.
func (w *Writer) WriteRecord(rec roster.Record) error {
	w.w.WriteString(strconv.Itoa(rec.Roll))
	w.w.WriteByte('|')
	w.w.WriteString(strconv.Itoa(rec.Marks))
	w.w.WriteByte('|')
	w.w.WriteString(rec.Name)
	return w.w.WriteByte('\n')
}

// Flush flushes buffered output to the underlying writer
func (w *Writer) Flush() error {
	return w.w.Flush()
}
