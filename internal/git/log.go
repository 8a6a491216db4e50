package git

import (
	"context"
	"fmt"
)

// Sentinel marks the start of each commit in our git log output. Numstat
// lines always begin with a digit, "-", or a tab, so a leading "+" is
// unambiguous.
const Sentinel byte = '+'

// LogArgs builds the argument list for a git log invocation that emits one
// sentinel-prefixed author line per commit followed by per-file numstat
// lines.
//
// When repo is non-empty the command runs against that repository via
// git -C. Any extra args are passed through to git log verbatim so callers
// can hand us revision ranges and path filters.
func LogArgs(repo string, extra []string) []string {
	args := []string{}
	if repo != "" {
		args = append(args, "-C", repo)
	}

	args = append(
		args,
		"log",
		fmt.Sprintf("--pretty=format:%c%%an <%%ae>", Sentinel),
		"--numstat",
	)

	return append(args, extra...)
}

// Runs git log against the given repository.
func RunLog(
	ctx context.Context,
	repo string,
	extra []string,
) (*Subprocess, error) {
	subprocess, err := run(ctx, LogArgs(repo, extra))
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}
