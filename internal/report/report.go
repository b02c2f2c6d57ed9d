// Package report formats benchmark results for humans and as CSV lines.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/e11jah/searchtree/internal/bench"
	"github.com/fatih/color"
)

// TimestampLayout is the layout of the first CSV column.
const TimestampLayout = "2006-01-02 15:04:05"

const rule = "---------------------------------------------------"

// CSVLine formats one result as
//
//	timestamp,rows,bstSortedInsert,bstSortedSearch,bstShuffledInsert,bstShuffledSearch,
//	avlSortedInsert,avlSortedSearch,avlShuffledInsert,avlShuffledSearch
//
// with durations in nanoseconds and a trailing newline.
func CSVLine(at time.Time, r bench.Result) string {
	var sb strings.Builder
	sb.WriteString(at.Format(TimestampLayout))
	fmt.Fprintf(&sb, ",%d", r.Rows)
	for _, c := range bench.Cases {
		t := r.Timings[c]
		fmt.Fprintf(&sb, ",%d,%d", t.Insert.Nanoseconds(), t.Search.Nanoseconds())
	}
	sb.WriteByte('\n')
	return sb.String()
}

// AppendCSV appends line to the file at path, creating it if necessary.
func AppendCSV(path string, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}

// WriteSummary writes a human readable table of r. Case labels are colored
// unless color output is disabled (see color.NoColor).
func WriteSummary(w io.Writer, r bench.Result) error {
	label := color.New(color.FgGreen).SprintFunc()
	lines := []string{
		rule,
		fmt.Sprintf("Lines read: %d", r.Rows),
	}
	for _, c := range bench.Cases {
		t := r.Timings[c]
		lines = append(lines, fmt.Sprintf("%s : insert = %d ns, search = %d ns",
			label(fmt.Sprintf("%-14s", c)), t.Insert.Nanoseconds(), t.Search.Nanoseconds()))
	}
	lines = append(lines, rule)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
