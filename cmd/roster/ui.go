package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kjk/roster/roster"
	"github.com/kjk/roster/textutil"
)

var stdin = bufio.NewReader(os.Stdin)

// readLine prompts and reads one line, without the trailing newline.
// Exits cleanly on EOF (ctrl-D), there is nothing sensible to do after
// stdin is gone.
func readLine(prompt string) string {
	fmt.Print(prompt)
	s, err := stdin.ReadString('\n')
	if err != nil && s == "" {
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimRight(s, "\r\n")
}

// promptInt keeps asking until it gets a whole-string integer in
// [min,max]. Trailing garbage re-asks: "12abc" is a typo at a prompt,
// not a file we have to be compatible with.
func promptInt(prompt string, min, max int) int {
	for {
		s := readLine(prompt)
		v, ok := textutil.ParseIntStrict(s)
		if ok && v >= min && v <= max {
			return v
		}
		fmt.Printf("Please enter a number between %d and %d.\n", min, max)
	}
}

func promptName(prompt string) string {
	s := readLine(prompt)
	name, truncated := textutil.NormalizeName(s)
	if truncated {
		fmt.Printf("Note: name truncated to %d characters.\n", textutil.MaxNameLen)
	}
	return name
}

// promptPath asks for a file name, empty input picks def
func promptPath(prompt, def string) string {
	s := strings.TrimSpace(readLine(fmt.Sprintf("%s [%s]: ", prompt, def)))
	if s == "" {
		return def
	}
	return s
}

func askYesNo(prompt string) bool {
	for {
		s := strings.ToLower(strings.TrimSpace(readLine(prompt + " (y/n): ")))
		switch s {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func displayRecord(rec roster.Record) {
	status := "FAIL"
	if rec.Marks >= roster.PassThreshold {
		status = "PASS"
	}
	fmt.Printf("Roll: %-5d Name: %-30s Marks: %3d [%s]\n", rec.Roll, rec.Name, rec.Marks, status)
}

func displayAll(st *roster.Roster) {
	if st.Len() == 0 {
		fmt.Println("No records.")
		return
	}
	for _, rec := range st.Records() {
		displayRecord(rec)
	}
	fmt.Printf("%d record(s).\n", st.Len())
}

func displayStats(st *roster.Roster) {
	s, err := st.Stats()
	if err != nil {
		fmt.Println("No records to summarize.")
		return
	}
	fmt.Printf("Total students : %d\n", s.Count)
	fmt.Printf("Average marks  : %.2f\n", s.Average)
	fmt.Printf("Highest marks  : %d\n", s.Max)
	fmt.Printf("Lowest marks   : %d\n", s.Min)
	fmt.Printf("Passed         : %d (%.1f%%)\n", s.PassCount, s.PassRate)
	fmt.Printf("Failed         : %d\n", s.FailCount)
}

func banner(st *roster.Roster) {
	if !st.Modified {
		return
	}
	last := st.LastPath
	if last == "" {
		last = "never saved"
	}
	fmt.Printf("* unsaved changes (last file: %s)\n", last)
}

func printMenu() {
	fmt.Print(`
 1. Add student          10. Save to file
 2. Modify student       11. Load from file
 3. Remove student       12. Quick save
 4. Display all          13. Export JSON
 5. Search by roll       14. Export Excel
 6. Statistics           15. Import Excel
 7. Sort by marks (asc)  16. Show unsaved changes
 8. Sort by marks (desc) 17. Backup data file
 9. Sort by name         18. Debug dump
 0. Exit
`)
}
