package tally_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/git-contrib/git-contrib/internal/tally"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		input    string
		expected tally.Spec
	}{
		{"delta", tally.Spec{Field: tally.ByDelta}},
		{"commits", tally.Spec{Field: tally.ByCommits}},
		{"files", tally.Spec{Field: tally.ByFiles}},
		{"added", tally.Spec{Field: tally.ByAdded}},
		{"removed", tally.Spec{Field: tally.ByRemoved}},
		// Author is the one field that defaults to ascending.
		{"author", tally.Spec{Field: tally.ByAuthor, Ascending: true}},
		{"-author", tally.Spec{Field: tally.ByAuthor}},
		{"+author", tally.Spec{Field: tally.ByAuthor, Ascending: true}},
		{"+delta", tally.Spec{Field: tally.ByDelta, Ascending: true}},
		{"-delta", tally.Spec{Field: tally.ByDelta}},
		{"+commits", tally.Spec{Field: tally.ByCommits, Ascending: true}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			spec, err := tally.ParseSpec(test.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) returned error: %v", test.input, err)
			}

			if diff := cmp.Diff(test.expected, spec); diff != "" {
				t.Errorf("spec is wrong:\n%s", diff)
			}
		})
	}
}

func TestParseSpecInvalid(t *testing.T) {
	for _, input := range []string{"", "lines", "+", "--delta", "Delta"} {
		t.Run(input, func(t *testing.T) {
			_, err := tally.ParseSpec(input)
			if err == nil {
				t.Errorf("ParseSpec(%q) should have returned an error", input)
			}
		})
	}
}
