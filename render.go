package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/git-contrib/git-contrib/internal/format"
	"github.com/git-contrib/git-contrib/internal/pretty"
	"github.com/git-contrib/git-contrib/internal/tally"
)

// Width taken by the tab-separated numeric columns in the separator rule.
const numericColsWidth = 38

// Writes the report as a fixed-column table: a header row, a separator
// rule, then one row per author. The author column is padded or truncated
// to the given width; the numeric columns are tab-separated.
func writeTable(
	w io.Writer,
	table *tally.Table,
	limit int,
	width int,
	theme pretty.Theme,
) {
	fmt.Fprintf(
		w,
		"%-*s\t%s\t%s\t%s\t%s\t%s\n",
		width,
		"author",
		"commits",
		"files",
		"delta",
		"+",
		"-",
	)
	fmt.Fprintln(w, strings.Repeat("─", width+numericColsWidth))

	var rows int
	for agg := range table.Authors() {
		if limit > 0 && rows >= limit {
			break
		}

		fmt.Fprintf(
			w,
			"%-*s\t%d\t%d\t%d\t%s\t%s\n",
			width,
			format.Abbrev(agg.Author, width),
			agg.Commits,
			agg.Files(),
			agg.Delta(),
			theme.Added.Sprint(agg.Added),
			theme.Removed.Sprint(agg.Removed),
		)

		rows++
	}
}

func writeCsv(w io.Writer, table *tally.Table, limit int) error {
	out := csv.NewWriter(w)

	err := out.Write(
		[]string{"author", "commits", "files", "delta", "added", "removed"},
	)
	if err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	var rows int
	for agg := range table.Authors() {
		if limit > 0 && rows >= limit {
			break
		}

		record := []string{
			agg.Author,
			strconv.Itoa(agg.Commits),
			strconv.Itoa(agg.Files()),
			strconv.Itoa(agg.Delta()),
			strconv.Itoa(agg.Added),
			strconv.Itoa(agg.Removed),
		}
		if err := out.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}

		rows++
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return nil
}
