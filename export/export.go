// Package export converts a roster to and from interchange formats
// (pretty-printed JSON, Excel). These are convenience views; the
// canonical on-disk format is rosterfile's.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/xuri/excelize/v2"

	"github.com/kjk/roster/fileutil"
	"github.com/kjk/roster/roster"
	"github.com/kjk/roster/textutil"
)

// WriteJSON writes the records as a pretty-printed JSON array. Written
// atomically: an export is a snapshot for other tools, never the file
// we'd lose data over.
func WriteJSON(r *roster.Roster, path string) error {
	recs := r.Records()
	if recs == nil {
		recs = []roster.Record{}
	}
	d, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, pretty.Pretty(d))
}

// WriteExcel writes the records to a one-sheet .xlsx file with a
// Roll / Name / Marks header row
func WriteExcel(r *roster.Roster, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Roll")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Marks")
	for i, rec := range r.Records() {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rec.Roll)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.Marks)
	}
	return f.SaveAs(path)
}

// ReadExcel reads records from the first sheet of an .xlsx file.
// Row 1 is assumed to be a header and skipped; column A is roll,
// B is name, C is marks. Rows that don't parse or validate are skipped
// with a warning, same tolerance as loading a roster file. The caller
// adds the result into a roster, which is where duplicates get rejected.
func ReadExcel(path string) ([]roster.Record, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, errors.New("excel file does not contain any sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	var recs []roster.Record
	var warnings []string
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		roll, ok1 := textutil.ParseIntPrefix(cell(row, 0))
		name := strings.TrimSpace(cell(row, 1))
		marks, ok2 := textutil.ParseIntPrefix(cell(row, 2))
		rec := roster.Record{Roll: roll, Name: name, Marks: marks}
		if !ok1 || !ok2 || !rec.Valid() {
			warnings = append(warnings, fmt.Sprintf("invalid data in row %d (skipped)", i+1))
			continue
		}
		recs = append(recs, rec)
	}
	return recs, warnings, nil
}
