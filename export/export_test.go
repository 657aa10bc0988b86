package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
	"github.com/xuri/excelize/v2"

	"github.com/kjk/roster/roster"
)

func testRoster(t *testing.T) *roster.Roster {
	r := roster.New()
	assert.NoError(t, r.Add(roster.Record{Roll: 7, Name: "Ada", Marks: 91}))
	assert.NoError(t, r.Add(roster.Record{Roll: 12, Name: "Grace", Marks: 40}))
	return r
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	r := testRoster(t)
	assert.NoError(t, WriteJSON(r, path))

	d, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(d), `"roll": 7`))

	var got []roster.Record
	assert.NoError(t, json.Unmarshal(d, &got))
	assert.Equal(t, r.Records(), got)
}

func TestWriteJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	assert.NoError(t, WriteJSON(roster.New(), path))

	d, err := os.ReadFile(path)
	assert.NoError(t, err)
	var got []roster.Record
	assert.NoError(t, json.Unmarshal(d, &got))
	assert.Equal(t, 0, len(got))
}

func TestExcelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	r := testRoster(t)
	assert.NoError(t, WriteExcel(r, path))

	recs, warnings, err := ReadExcel(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(warnings))
	assert.Equal(t, r.Records(), recs)
}

func TestReadExcelTolerance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Roll")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Marks")
	// good row
	f.SetCellValue(sheet, "A2", 1)
	f.SetCellValue(sheet, "B2", "Ada")
	f.SetCellValue(sheet, "C2", 90)
	// missing marks
	f.SetCellValue(sheet, "A3", 2)
	f.SetCellValue(sheet, "B3", "NoMarks")
	// marks out of range
	f.SetCellValue(sheet, "A4", 3)
	f.SetCellValue(sheet, "B4", "TooGood")
	f.SetCellValue(sheet, "C4", 101)
	assert.NoError(t, f.SaveAs(path))
	assert.NoError(t, f.Close())

	recs, warnings, err := ReadExcel(path)
	assert.NoError(t, err)
	assert.Equal(t, []roster.Record{{Roll: 1, Name: "Ada", Marks: 90}}, recs)
	assert.Equal(t, 2, len(warnings))
}
