package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-contrib/git-contrib/internal/pretty"
	"github.com/git-contrib/git-contrib/internal/tally"
)

func exampleTable() *tally.Table {
	table := tally.NewTable()

	alice := table.GetOrCreate("Alice <a@x.com>")
	alice.Commits = 1
	alice.Added = 3
	alice.Removed = 1

	bob := table.GetOrCreate("Bob <b@x.com>")
	bob.Commits = 2
	bob.Added = 7
	bob.Removed = 2

	return table
}

func TestWriteTable(t *testing.T) {
	var out strings.Builder
	writeTable(&out, exampleTable(), 0, 20, pretty.NewTheme("never"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4) // header, rule, two rows

	assert.Equal(
		t,
		"author              \tcommits\tfiles\tdelta\t+\t-",
		lines[0],
	)

	// Default order is delta descending, so Bob comes first.
	assert.Equal(t, "Bob <b@x.com>       \t2\t0\t5\t7\t2", lines[2])
	assert.Equal(t, "Alice <a@x.com>     \t1\t0\t2\t3\t1", lines[3])
}

func TestWriteTableTruncatesAuthor(t *testing.T) {
	table := tally.NewTable()
	long := table.GetOrCreate("Bartholomew Montgomery Fitzgerald <bmf@x.com>")
	long.Commits = 1
	long.Added = 1

	var out strings.Builder
	writeTable(&out, table, 0, 10, pretty.NewTheme("never"))

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 2)
	assert.True(
		t,
		strings.HasPrefix(lines[2], "Bartholom…"),
		"author name should be truncated with an ellipsis: %q",
		lines[2],
	)
}

func TestWriteTableLimit(t *testing.T) {
	var out strings.Builder
	writeTable(&out, exampleTable(), 1, 20, pretty.NewTheme("never"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 3) // header, rule, one row
}

func TestWriteCsv(t *testing.T) {
	var out strings.Builder
	err := writeCsv(&out, exampleTable(), 0)
	require.NoError(t, err)

	expected := "author,commits,files,delta,added,removed\n" +
		"Bob <b@x.com>,2,0,5,7,2\n" +
		"Alice <a@x.com>,1,0,2,3,1\n"
	assert.Equal(t, expected, out.String())
}
