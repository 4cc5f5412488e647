package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jonathanmweiss/computor"
	"github.com/jonathanmweiss/computor/internal/config"
	"github.com/jonathanmweiss/computor/internal/shell"
	"golang.org/x/term"
)

const (
	program = "computor"
	version = "1.0"

	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

type cliFlags struct {
	fractions bool
	noLabels  bool
	quiet     bool
	reduced   bool
	steps     bool
	watch     bool
	version   bool
	file      string
	config    string
}

func newFlagSet(f *cliFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)

	boolFlag := func(p *bool, short, long, usage string) {
		fs.BoolVar(p, short, false, usage)
		fs.BoolVar(p, long, false, usage)
	}

	boolFlag(&f.fractions, "f", "use-fractions", "use fractions instead of floats if possible")
	boolFlag(&f.noLabels, "n", "no-labels", "do not show the labels of the output")
	boolFlag(&f.quiet, "q", "quiet", "show only the solution")
	boolFlag(&f.reduced, "r", "reduced", "show only the reduced form of the polynomial")
	boolFlag(&f.steps, "s", "show-steps", "show the intermediate steps of the solution")
	fs.BoolVar(&f.watch, "watch", false, "solve --file again every time it changes")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	fs.StringVar(&f.file, "file", "", "read equations from `PATH`, one per line")
	fs.StringVar(&f.config, "config", "", "settings file `PATH` (default $"+config.EnvPath+" or the user config dir)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "usage: %s [flags] POLYNOMIAL...\n\n", program)
		fmt.Fprintf(out, "Solve polynomial equations up to degree %d.\n\n", computor.MaxDegree)
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExample: %s '- 9.3 * X^2 + 4 * X + 5 = 1'\n", program)
	}

	return fs
}

// applyFlags overrides the settings with the flags given on the command line.
func applyFlags(fs *flag.FlagSet, f *cliFlags, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "f", "use-fractions":
			cfg.UseFractions = f.fractions
		case "n", "no-labels":
			cfg.NoLabels = f.noLabels
		case "q", "quiet":
			cfg.Quiet = f.quiet
		case "s", "show-steps":
			cfg.ShowSteps = f.steps
		}
	})
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var f cliFlags

	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return exitUsage
	}

	if f.version {
		fmt.Fprintf(stdout, "%s %s\n", program, version)

		return 0
	}

	equations := fs.Args()

	switch {
	case f.watch && f.file == "":
		fmt.Fprintf(stderr, "%s: --watch needs --file\n", program)

		return exitUsage
	case f.file != "" && len(equations) > 0:
		fmt.Fprintf(stderr, "%s: --file and POLYNOMIAL arguments are exclusive\n", program)

		return exitUsage
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)

		return exitUsage
	}

	applyFlags(fs, &f, cfg)

	// Load validated the level already.
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})).
		With("run", uuid.NewString())

	opts := []shell.Option{
		shell.WithOptions(computor.Options{
			NoLabels:     cfg.NoLabels,
			Quiet:        cfg.Quiet,
			ShowSteps:    cfg.ShowSteps,
			UseFractions: cfg.UseFractions,
		}),
		shell.WithReducedOnly(f.reduced),
		shell.WithLogger(logger),
	}

	if cfg.Color && isTerminal(stdout) {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
		opts = append(opts, shell.WithLabelStyle(func(s string) string { return style.Render(s) }))
	}

	r := shell.New(program, stdout, stderr, opts...)

	logger.Debug("starting", "config", cfg.File(), "equations", len(equations), "file", f.file, "watch", f.watch)

	switch {
	case f.watch:
		return reportErr(stderr, r.Watch(ctx, f.file), 0)
	case f.file != "":
		status, err := r.RunFile(f.file)

		return reportErr(stderr, err, status)
	case len(equations) > 0:
		return r.Run(equations)
	case isTerminal(stdin):
		return reportErr(stderr, r.REPL(ctx, cfg.History()), 0)
	}

	status, err := r.RunReader(stdin)

	return reportErr(stderr, err, status)
}

func reportErr(stderr io.Writer, err error, status int) int {
	if err == nil {
		return status
	}

	fmt.Fprintf(stderr, "%s: %v\n", program, err)

	return 1
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
