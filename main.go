package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/git-contrib/git-contrib/internal/config"
	"github.com/git-contrib/git-contrib/internal/pretty"
	"github.com/git-contrib/git-contrib/internal/tally"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		exclude    string
		include    string
		order      string
		repos      []string
		useCsv     bool
		limit      int
		width      int
		colorMode  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "git-contrib [options...] [revisions...] [[--] paths...]",
		Short: "Tally line contributions by author",
		Long: `git-contrib tallies commits, files touched, and lines added and removed
per author by reading git log output.

Positional arguments are passed through to git log verbatim, so revision
ranges and path filters work the same as they do for git log itself.`,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(os.Stderr)
			if verbose {
				log.SetLevel(log.DebugLevel)
				log.Debug("log level set to DEBUG")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags beat config; config beats built-in defaults.
			if !cmd.Flags().Changed("order") {
				order = cfg.Order
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Width
			}
			if !cmd.Flags().Changed("color") {
				colorMode = cfg.Color
			}

			// Everything below must be validated before any git runs.
			spec, err := tally.ParseSpec(order)
			if err != nil {
				return err
			}

			includeRe, err := compileFilter("include", include)
			if err != nil {
				return err
			}

			excludeRe, err := compileFilter("exclude", exclude)
			if err != nil {
				return err
			}

			if limit < 0 {
				return errors.New("-n flag must be a positive integer")
			}

			if width < minAuthorWidth {
				return fmt.Errorf(
					"-w flag must be at least %d",
					minAuthorWidth,
				)
			}

			return stats(cmd.Context(), statsOptions{
				repos:   repos,
				logArgs: passthroughArgs(args, cmd.ArgsLenAtDash()),
				include: includeRe,
				exclude: excludeRe,
				spec:    spec,
				limit:   limit,
				width:   width,
				useCsv:  useCsv,
				theme:   pretty.NewTheme(colorMode),
			})
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false) // Positionals flow through to git log

	flags.StringVarP(&exclude, "exclude", "e", "",
		"Exclude files matching this regular expression from counts")
	flags.StringVarP(&include, "include", "i", "",
		"Only count files matching this regular expression")
	flags.StringVarP(&order, "order", "o", "delta",
		"Sort order: author|files|commits|added|removed|delta, with optional +/- prefix")
	flags.StringArrayVarP(&repos, "repo", "r", nil,
		"Repository path to aggregate. Can be specified multiple times")
	flags.BoolVar(&useCsv, "csv", false, "Output as csv")
	flags.IntVarP(&limit, "limit", "n", 0,
		"Limit rows in table (set to 0 for no limit)")
	flags.IntVarP(&width, "width", "w", 60,
		"Max display width of the author column")
	flags.StringVar(&colorMode, "color", "auto",
		"Colorize output: auto|always|never")
	flags.StringVar(&configPath, "config", "", "Path to config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enables debug logging")

	return cmd
}

func compileFilter(name string, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad %s pattern: %w", name, err)
	}

	return re, nil
}

// Rebuilds the arg list handed through to git log. pflag swallows the "--"
// separating revisions from paths, so we put it back where it was.
func passthroughArgs(args []string, lenAtDash int) []string {
	if lenAtDash < 0 {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[:lenAtDash]...)
	out = append(out, "--")
	return append(out, args[lenAtDash:]...)
}
