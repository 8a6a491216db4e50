package tally

import (
	"iter"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Options controls how a log stream folds into a table.
type Options struct {
	// Sentinel is the marker byte beginning each commit header line.
	Sentinel byte

	// Include, when set, restricts counting to files matching the pattern.
	Include *regexp.Regexp

	// Exclude, when set, drops files matching the pattern.
	Exclude *regexp.Regexp

	// PathPrefix is prepended to every retained filename, keeping identical
	// relative paths in different repositories distinct.
	PathPrefix string
}

var statLine = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(.+)$`)

// One commit's worth of parse state. Reset at every commit boundary.
type accumulator struct {
	author  string
	added   int
	removed int
	files   map[string]struct{}
}

func (a *accumulator) reset(author string) {
	a.author = author
	a.added = 0
	a.removed = 0
	a.files = map[string]struct{}{}
}

// Commits that touch no files after filtering never produce a record. This
// drops merge commits and empty commits, and also means a commit whose files
// are all filtered out vanishes from its author's commit count.
func (a *accumulator) foldInto(t *Table) {
	if a.author == "" || len(a.files) == 0 {
		return
	}

	agg := t.GetOrCreate(a.author)
	agg.Commits++
	agg.Added += a.added
	agg.Removed += a.removed

	for path := range a.files {
		agg.touch(path)
	}
}

// Fold consumes a git log stream and folds every commit into a fresh table.
//
// A line beginning with the sentinel starts a new commit; everything after
// the sentinel is the author identity. Every other non-blank line is tried
// as a numstat line and silently skipped when it doesn't match, which keeps
// us tolerant of stray output. The final commit is flushed at end of stream.
func Fold(lines iter.Seq[string], opts Options) *Table {
	table := NewTable()

	var current accumulator
	var skipped int

	for line := range lines {
		if len(line) == 0 {
			continue
		}

		if line[0] == opts.Sentinel {
			current.foldInto(table)
			current.reset(strings.TrimSpace(line[1:]))
			continue
		}

		matches := statLine.FindStringSubmatch(line)
		if matches == nil {
			skipped++
			continue
		}

		added, err := strconv.Atoi(matches[1])
		if err != nil {
			skipped++
			continue
		}

		removed, err := strconv.Atoi(matches[2])
		if err != nil {
			skipped++
			continue
		}

		name := matches[3]
		if !retained(name, opts) {
			continue
		}

		if opts.PathPrefix != "" {
			name = filepath.Join(opts.PathPrefix, name)
		}

		if current.files == nil {
			// Stat line before any commit header. Nothing to attribute
			// it to.
			skipped++
			continue
		}

		current.added += added
		current.removed += removed
		current.files[name] = struct{}{}
	}

	current.foldInto(table)

	if skipped > 0 {
		logger().Debug("skipped unrecognized log lines", "count", skipped)
	}

	return table
}

func retained(name string, opts Options) bool {
	if opts.Include != nil && !opts.Include.MatchString(name) {
		return false
	}

	if opts.Exclude != nil && opts.Exclude.MatchString(name) {
		return false
	}

	return true
}
