package tally

import (
	"fmt"
	"strings"
)

// Field selects which aggregate attribute orders report rows.
type Field int

const (
	ByDelta Field = iota
	ByAuthor
	ByFiles
	ByCommits
	ByAdded
	ByRemoved
)

var fieldNames = map[string]Field{
	"author":  ByAuthor,
	"files":   ByFiles,
	"commits": ByCommits,
	"added":   ByAdded,
	"removed": ByRemoved,
	"delta":   ByDelta,
}

// Spec is a sort order for table iteration: a field plus a direction.
type Spec struct {
	Field     Field
	Ascending bool
}

// DefaultSpec orders by delta, descending.
var DefaultSpec = Spec{Field: ByDelta}

// ParseSpec parses an order argument of the form [+|-]FIELD.
//
// Without an explicit direction every field sorts descending except author,
// which sorts ascending so that a plain "author" order reads alphabetically.
func ParseSpec(s string) (Spec, error) {
	var spec Spec
	var explicit bool

	name := s
	switch {
	case strings.HasPrefix(s, "+"):
		spec.Ascending = true
		explicit = true
		name = s[1:]
	case strings.HasPrefix(s, "-"):
		explicit = true
		name = s[1:]
	}

	field, ok := fieldNames[name]
	if !ok {
		return spec, fmt.Errorf(
			"unknown order %q; expected one of author|files|commits|added|removed|delta",
			s,
		)
	}

	spec.Field = field
	if field == ByAuthor && !explicit {
		spec.Ascending = true
	}

	return spec, nil
}
