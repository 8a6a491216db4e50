package main

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/git-contrib/git-contrib/internal/git"
	"github.com/git-contrib/git-contrib/internal/pretty"
	"github.com/git-contrib/git-contrib/internal/tally"
)

const minAuthorWidth = 8

type statsOptions struct {
	repos   []string
	logArgs []string
	include *regexp.Regexp
	exclude *regexp.Regexp
	spec    tally.Spec
	limit   int
	width   int
	useCsv  bool
	theme   pretty.Theme
}

// Aggregates contributions across the configured repositories and prints
// the report to stdout.
func stats(ctx context.Context, opts statsOptions) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error tallying contributions: %w", err)
		}
	}()

	log.Debug(
		"called stats()",
		"repos", opts.repos,
		"logArgs", opts.logArgs,
		"spec", opts.spec,
		"limit", opts.limit,
		"csv", opts.useCsv,
	)

	table, err := aggregate(ctx, opts)
	if err != nil {
		return err
	}

	table.SortBy(opts.spec)

	if table.Len() == 0 {
		fmt.Println("no commits found")
		return nil
	}

	if opts.useCsv {
		return writeCsv(os.Stdout, table, opts.limit)
	}

	writeTable(os.Stdout, table, opts.limit, opts.width, opts.theme)
	return nil
}

// Builds one table per repository and merges them. Table merge is
// commutative and associative, so the repositories can be processed in
// parallel without changing the aggregate.
func aggregate(ctx context.Context, opts statsOptions) (*tally.Table, error) {
	if len(opts.repos) == 0 {
		// Current working directory's repository; no path prefix.
		return tallyRepo(ctx, "", opts)
	}

	tables := make([]*tally.Table, len(opts.repos))

	g, ctx := errgroup.WithContext(ctx)
	for i, repo := range opts.repos {
		g.Go(func() error {
			table, err := tallyRepo(ctx, repo, opts)
			if err != nil {
				return err
			}

			tables[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := tables[0]
	for _, table := range tables[1:] {
		merged = merged.Merge(table)
	}

	return merged, nil
}

// Runs git log for one repository and folds the output into a table.
//
// A git log that exits non-zero is reported as a warning, not a failure:
// whatever was parsed before the subprocess died still counts, and an empty
// table falls through to the "no commits found" path.
func tallyRepo(
	ctx context.Context,
	repo string,
	opts statsOptions,
) (*tally.Table, error) {
	subprocess, err := git.RunLog(ctx, repo, opts.logArgs)
	if err != nil {
		return nil, err
	}

	lines, finish := subprocess.StdoutLines()

	foldOpts := tally.Options{
		Sentinel: git.Sentinel,
		Include:  opts.include,
		Exclude:  opts.exclude,
	}
	if repo != "" {
		foldOpts.PathPrefix = repo
	}

	table := tally.Fold(lines, foldOpts)

	if err := finish(); err != nil {
		return nil, err
	}

	if err := subprocess.Wait(); err != nil {
		log.Warn("git log failed", "repo", repo, "err", err)
	}

	return table, nil
}
