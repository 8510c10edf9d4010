package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/rhyrak/go-advisor/internal/config"
	"github.com/rhyrak/go-advisor/internal/csvio"
	"github.com/rhyrak/go-advisor/internal/formatter"
	"github.com/rhyrak/go-advisor/internal/scheduler"
	"github.com/rhyrak/go-advisor/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Modes selected by the third positional argument.
const (
	ModeEligible = 1
	ModeNextTerm = 2
	ModeSimulate = 3
)

var errTooFewArguments = errors.New("too few arguments")

// App holds the process streams the commands write to.
type App struct {
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool
}

type options struct {
	configPath string
	outDir     string
	prefix     string
	suffix     string
	summary    string
	delimiter  string
	maxTerms   int
	details    bool
	validate   bool
	verbose    bool
}

func newRootCmd(app *App) *cobra.Command {
	opts := &options{}
	defaults := scheduler.NewDefaultConfiguration()

	root := &cobra.Command{
		Use:   "advisor <catalog.csv> <grades.csv> <mode>",
		Short: "Course registration advisor",
		Long: `Reads a course catalog and a student's grades and
  mode 1: lists the courses the student may take now
  mode 2: lists a best-effort course set for the next term
  mode 3: simulates terms until every course is passed, writing one file per term`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return fmt.Errorf("%w: usage: %s", errTooFewArguments, cmd.UseLine())
			}
			if len(args) > 3 {
				return fmt.Errorf("too many arguments: usage: %s", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, opts, args)
		},
	}
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default: $XDG_CONFIG_HOME/advisor/config.toml)")
	flags.StringVar(&opts.outDir, "out-dir", defaults.OutputDir, "directory for per-term files")
	flags.StringVar(&opts.prefix, "prefix", defaults.FilePrefix, "per-term file name prefix")
	flags.StringVar(&opts.suffix, "suffix", defaults.FileSuffix, "per-term file name suffix")
	flags.StringVar(&opts.summary, "summary", "", "write a csv summary of the simulation to this path")
	flags.StringVar(&opts.delimiter, "delimiter", string(defaults.CSVDelimiter), "csv field delimiter")
	flags.IntVar(&opts.maxTerms, "max-terms", defaults.MaxTerms, "term cap for simulation (0 derives it from the catalog size)")
	flags.BoolVar(&opts.details, "details", false, "print a course table instead of bare IDs")
	flags.BoolVar(&opts.validate, "validate", false, "print a unit cap and collision report for each term")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return root
}

func run(cmd *cobra.Command, app *App, opts *options, args []string) error {
	mode, err := strconv.Atoi(args[2])
	if err != nil || mode < ModeEligible || mode > ModeSimulate {
		return fmt.Errorf("unknown mode %q: expected 1, 2 or 3", args[2])
	}

	cfg, err := buildConfiguration(cmd, opts)
	if err != nil {
		return err
	}
	cfg.CatalogFile = args[0]
	cfg.GradesFile = args[1]

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(app.Stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := csvio.LoadCatalog(cfg.CatalogFile, cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	student, err := csvio.LoadGrades(cfg.GradesFile, cfg)
	if err != nil {
		return fmt.Errorf("loading grades: %w", err)
	}
	for id := range student.Grades {
		if catalog.Find(id) == nil {
			logger.Warn("grade for course missing from catalog", "course", id)
		}
	}
	logger.Debug("inputs loaded", "courses", catalog.Len(), "grades", len(student.Grades))

	fmtr := formatter.Formatter{Plain: app.IsTerminal == nil || !app.IsTerminal()}
	out := cmd.OutOrStdout()

	switch mode {
	case ModeEligible:
		eligible := scheduler.SortByName(scheduler.Eligible(catalog.Courses, student, cfg))
		return printCourses(out, fmtr, opts.details, eligible)
	case ModeNextTerm:
		gpa, courses := scheduler.NextTerm(catalog, student, cfg)
		logger.Debug("next term packed", "gpa", gpa, "cap", scheduler.UnitCap(gpa, cfg), "units", scheduler.TotalUnits(courses))
		if opts.validate {
			_, report := scheduler.ValidateTerm(courses, gpa, cfg)
			fmt.Fprint(cmd.ErrOrStderr(), fmtr.Report(report))
		}
		return printCourses(out, fmtr, opts.details, courses)
	default:
		return simulate(cmd, fmtr, opts, cfg, logger, catalog, student)
	}
}

func simulate(cmd *cobra.Command, fmtr formatter.Formatter, opts *options, cfg *scheduler.Configuration,
	logger *slog.Logger, catalog *model.Catalog, student *model.Student) error {
	logger = logger.With("run", uuid.New().String())
	out := cmd.OutOrStdout()

	emit := func(term model.Term) error {
		path, err := csvio.ExportTerm(term, cfg)
		if err != nil {
			return err
		}
		logger.Debug("term exported", "term", term.Number, "path", path)
		if opts.validate {
			_, report := scheduler.ValidateTerm(term.Courses, term.GPA, cfg)
			fmt.Fprint(cmd.ErrOrStderr(), fmtr.Report(report))
		}
		if opts.details {
			fmt.Fprintln(out, fmtr.TermHeader(term, scheduler.TotalUnits(term.Courses)))
			fmt.Fprintln(out, fmtr.CourseTable(term.Courses))
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	terms, err := scheduler.Simulate(ctx, catalog, student, cfg, logger, emit)
	if cfg.SummaryFile != "" && len(terms) > 0 {
		if serr := csvio.ExportSummary(terms, cfg.SummaryFile, cfg); serr != nil {
			return errors.Join(err, serr)
		}
	}
	if err != nil {
		return fmt.Errorf("simulation stopped after %d terms: %w", len(terms), err)
	}
	logger.Info("simulation complete", "terms", len(terms))
	return nil
}

func printCourses(w io.Writer, fmtr formatter.Formatter, details bool, courses []*model.Course) error {
	if details {
		_, err := fmt.Fprint(w, fmtr.CourseTable(courses))
		return err
	}
	return csvio.WriteListing(w, courses)
}

// buildConfiguration layers defaults, the TOML file and explicitly set flags.
func buildConfiguration(cmd *cobra.Command, opts *options) (*scheduler.Configuration, error) {
	cfg := scheduler.NewDefaultConfiguration()

	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := fileCfg.Apply(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config: %w", err)
	}

	if err := applyFlags(cfg, cmd.Flags(), opts); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies only the flags set on the command line onto cfg.
func applyFlags(cfg *scheduler.Configuration, flags *pflag.FlagSet, opts *options) error {
	if flags.Changed("out-dir") {
		cfg.OutputDir = opts.outDir
	}
	if flags.Changed("prefix") {
		cfg.FilePrefix = opts.prefix
	}
	if flags.Changed("suffix") {
		cfg.FileSuffix = opts.suffix
	}
	if flags.Changed("summary") {
		cfg.SummaryFile = opts.summary
	}
	if flags.Changed("max-terms") {
		cfg.MaxTerms = opts.maxTerms
	}
	if flags.Changed("delimiter") {
		r, err := config.ParseDelimiter(opts.delimiter)
		if err != nil {
			return err
		}
		cfg.CSVDelimiter = r
	}
	return nil
}
