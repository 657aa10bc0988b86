package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/kjk/roster/export"
	"github.com/kjk/roster/fileutil"
	"github.com/kjk/roster/log"
	"github.com/kjk/roster/roster"
	"github.com/kjk/roster/rosterfile"
)

var (
	flgFile    string
	flgConfig  string
	flgLogs    string
	flgVerbose bool
)

func main() {
	flag.StringVar(&flgFile, "file", "", "data file (default "+rosterfile.DefaultPath+")")
	flag.StringVar(&flgConfig, "config", "", "config file (default "+defaultConfigPath+" if present)")
	flag.StringVar(&flgLogs, "logs", "", "directory for log files")
	flag.BoolVar(&flgVerbose, "verbose", false, "verbose logging")
	flag.Parse()

	cfgPath := flgConfig
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = defaultConfigPath
	}
	cfg, err := loadConfig(cfgPath, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading config %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	dataFile := rosterfile.DefaultPath
	if cfg.DataFile != "" {
		dataFile = cfg.DataFile
	}
	if flgFile != "" {
		dataFile = flgFile
	}
	logDir := cfg.LogDir
	if flgLogs != "" {
		logDir = flgLogs
	}
	log.Verbose = cfg.Verbose || flgVerbose
	if logDir != "" {
		log.Init(logDir)
		defer log.Close()
	}
	log.Verbosef("data file: %s, config: %s, logs: %s\n", dataFile, cfgPath, logDir)

	runShell(dataFile)
}

func runShell(dataFile string) {
	user := readLine("What's your name? [User]: ")
	if user == "" {
		user = "User"
	}
	fmt.Printf("Hello, %s!\n", user)
	log.Event("session", "user", user, "file", dataFile)

	st := roster.New()
	if _, err := os.Stat(dataFile); err == nil {
		doLoadPath(st, dataFile)
	}

	for {
		banner(st)
		printMenu()
		switch promptInt("Choice: ", 0, 18) {
		case 1:
			doAdd(st)
		case 2:
			doModify(st)
		case 3:
			doRemove(st)
		case 4:
			displayAll(st)
		case 5:
			doSearch(st)
		case 6:
			displayStats(st)
		case 7:
			doSort(st, roster.ByMarksAsc)
		case 8:
			doSort(st, roster.ByMarksDesc)
		case 9:
			doSort(st, roster.ByName)
		case 10:
			doSave(st, promptPath("Save to", saveTarget(st, dataFile)))
		case 11:
			doLoad(st, dataFile)
		case 12:
			doSave(st, saveTarget(st, dataFile))
		case 13:
			doExportJSON(st)
		case 14:
			doExportExcel(st)
		case 15:
			doImportExcel(st)
		case 16:
			doDiff(st)
		case 17:
			doBackup(st, dataFile)
		case 18:
			fmt.Print(spew.Sdump(st))
		case 0:
			if doExit(st, dataFile) {
				return
			}
		}
	}
}

// saveTarget is where a save goes when the user doesn't pick a file:
// the last used file, or the configured data file before any save/load
func saveTarget(st *roster.Roster, dataFile string) string {
	if st.LastPath != "" {
		return st.LastPath
	}
	return dataFile
}

func doAdd(st *roster.Roster) {
	roll := promptInt("Roll number: ", 1, 1_000_000_000)
	name := promptName("Name: ")
	marks := promptInt("Marks (0-100): ", 0, 100)
	err := st.Add(roster.Record{Roll: roll, Name: name, Marks: marks})
	if errors.Is(err, roster.ErrDuplicate) {
		fmt.Printf("A student with roll %d already exists.\n", roll)
		return
	}
	if log.IfErrf(err) {
		return
	}
	fmt.Println("Added.")
	log.Event("add", "roll", roll, "marks", marks)
}

func doModify(st *roster.Roster) {
	roll := promptInt("Roll number to modify: ", 1, 1_000_000_000)
	i, err := st.FindByRoll(roll)
	if err != nil {
		fmt.Printf("No student with roll %d.\n", roll)
		return
	}
	displayRecord(st.At(i))
	newRoll := promptInt("New roll number: ", 1, 1_000_000_000)
	newName := promptName("New name: ")
	newMarks := promptInt("New marks (0-100): ", 0, 100)
	err = st.ModifyAt(i, newRoll, newName, newMarks)
	if errors.Is(err, roster.ErrDuplicate) {
		fmt.Printf("A different student already has roll %d. Nothing changed.\n", newRoll)
		return
	}
	if log.IfErrf(err) {
		return
	}
	fmt.Println("Modified.")
	log.Event("modify", "roll", roll, "newRoll", newRoll)
}

func doRemove(st *roster.Roster) {
	roll := promptInt("Roll number to remove: ", 1, 1_000_000_000)
	i, err := st.FindByRoll(roll)
	if err != nil {
		fmt.Printf("No student with roll %d.\n", roll)
		return
	}
	displayRecord(st.At(i))
	if !askYesNo("Remove this student?") {
		return
	}
	if log.IfErrf(st.RemoveAt(i)) {
		return
	}
	fmt.Println("Removed.")
	log.Event("remove", "roll", roll)
}

func doSearch(st *roster.Roster) {
	roll := promptInt("Roll number: ", 1, 1_000_000_000)
	i, err := st.FindByRoll(roll)
	if err != nil {
		fmt.Printf("No student with roll %d.\n", roll)
		return
	}
	displayRecord(st.At(i))
}

func doSort(st *roster.Roster, order roster.SortOrder) {
	st.Sort(order)
	fmt.Printf("Sorted by %s.\n", order)
	log.Event("sort", "order", order.String())
	displayAll(st)
}

func doSave(st *roster.Roster, path string) {
	if log.IfErrf(rosterfile.Save(st, path)) {
		return
	}
	fmt.Printf("Saved %d record(s) to %s.\n", st.Len(), path)
	log.Event("save", "path", path, "count", st.Len())
}

func doLoad(st *roster.Roster, dataFile string) {
	if st.Modified && !askYesNo("Unsaved changes will be lost. Continue?") {
		return
	}
	def := st.LastPath
	if def == "" {
		def = dataFile
	}
	doLoadPath(st, promptPath("Load from", def))
}

func doLoadPath(st *roster.Roster, path string) {
	n, warnings, err := rosterfile.Load(st, path)
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if log.IfErrf(err) {
		return
	}
	fmt.Printf("Loaded %d record(s) from %s.\n", n, path)
	log.Event("load", "path", path, "count", n, "skipped", len(warnings))
}

func doExportJSON(st *roster.Roster) {
	path := promptPath("Export to", "students.json")
	if log.IfErrf(export.WriteJSON(st, path)) {
		return
	}
	fmt.Printf("Exported %d record(s) to %s.\n", st.Len(), path)
	log.Event("export", "format", "json", "path", path)
}

func doExportExcel(st *roster.Roster) {
	path := promptPath("Export to", "students.xlsx")
	if log.IfErrf(export.WriteExcel(st, path)) {
		return
	}
	fmt.Printf("Exported %d record(s) to %s.\n", st.Len(), path)
	log.Event("export", "format", "xlsx", "path", path)
}

func doImportExcel(st *roster.Roster) {
	path := promptPath("Import from", "students.xlsx")
	recs, warnings, err := export.ReadExcel(path)
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if log.IfErrf(err) {
		return
	}
	added, dups := 0, 0
	for _, rec := range recs {
		err := st.Add(rec)
		if errors.Is(err, roster.ErrDuplicate) {
			dups++
			continue
		}
		if log.IfErrf(err) {
			return
		}
		added++
	}
	fmt.Printf("Imported %d record(s) from %s", added, path)
	if dups > 0 {
		fmt.Printf(", skipped %d duplicate(s)", dups)
	}
	fmt.Println(".")
	log.Event("import", "format", "xlsx", "path", path, "added", added, "dups", dups)
}

func doDiff(st *roster.Roster) {
	d, err := rosterfile.UnsavedDiff(st)
	if log.IfErrf(err) {
		return
	}
	if d == "" {
		fmt.Println("No unsaved changes.")
		return
	}
	fmt.Print(d)
}

func doBackup(st *roster.Roster, dataFile string) {
	path := saveTarget(st, dataFile)
	dst, err := fileutil.BackupFile(path)
	if log.IfErrf(err, "backup of %s failed: %v", path, err) {
		return
	}
	fmt.Printf("Backed up %s to %s.\n", path, dst)
	log.Event("backup", "path", path, "dst", dst)
}

// doExit returns true when it's ok to leave
func doExit(st *roster.Roster, dataFile string) bool {
	if st.Modified && askYesNo("Save changes before exiting?") {
		doSave(st, saveTarget(st, dataFile))
	}
	fmt.Println("Bye.")
	return true
}
