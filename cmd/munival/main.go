// munival looks up Brazilian municipalities and their tax-document
// validators, classifies candidate validators and serves the same lookups
// as MCP tools.
//
// The two source tables are read on every invocation. Their location comes
// from the YAML file given with --config, MUNIVAL_* environment variables or
// the data flags, in increasing order of precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	munival "github.com/wagiedev/munival-go"
	"github.com/wagiedev/munival-go/internal/config"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// usageError marks bad command-line input; help is printed along with it.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// env carries what every subcommand needs.
type env struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
	format string
	stdout io.Writer
	stderr io.Writer

	// style decorates stdout, errStyle decorates stderr.
	style    *styles
	errStyle *styles
}

func newEnv(ctx context.Context, cfg *config.Config, format string, stdout, stderr io.Writer, terminal func(io.Writer) bool) *env {
	return &env{
		ctx:      ctx,
		cfg:      cfg,
		logger:   munival.NewLogger(stderr, cfg.Logging.Level, cfg.Logging.Format),
		format:   format,
		stdout:   stdout,
		stderr:   stderr,
		style:    newStyles(terminal(stdout)),
		errStyle: newStyles(terminal(stderr)),
	}
}

// catalog opens the catalog described by the resolved configuration.
func (e *env) catalog() (*munival.Catalog, error) {
	return munival.Open(e.ctx, e.catalogOptions()...)
}

func (e *env) catalogOptions() []munival.Option {
	opts := e.cfg.Options()
	opts.Logger = e.logger

	return []munival.Option{munival.WithOptions(opts)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		configPath       string
		format           string
		logLevel         string
		municipalityFile string
		validatorFile    string
		encoding         string
		showVersion      bool
	)

	flagSet := pflag.NewFlagSet("munival", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "YAML configuration file")
	flagSet.StringVar(&format, "format", formatText, "output format: text or json")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.StringVar(&municipalityFile, "municipality-file", "", "municipality table (TACES06)")
	flagSet.StringVar(&validatorFile, "validator-file", "", "validator table (TFIX105)")
	flagSet.StringVar(&encoding, "encoding", "", "source encoding: latin1 or utf-8")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)

			return nil
		}

		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)

		return nil
	}

	if showVersion {
		fmt.Fprintf(stdout, "munival %s\n", munival.Version)

		return nil
	}

	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(stderr, flagSet)

		return errors.New("missing command")
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		printHelp(stderr, flagSet)

		return fmt.Errorf("unknown command %q", rest[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if municipalityFile != "" {
		cfg.Data.MunicipalityFile = municipalityFile
	}

	if validatorFile != "" {
		cfg.Data.ValidatorFile = validatorFile
	}

	if encoding != "" {
		cfg.Data.Encoding = encoding
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	e := newEnv(ctx, cfg, format, stdout, stderr, isTerminal)

	err = cmd.run(e, rest[1:])

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "usage: munival %s\n", cmd.usage)
	}

	return err
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `munival: municipality and validator lookup.

Usage:
  munival [flags] <command> [arguments]

Commands:
`)

	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}

	fmt.Fprintf(w, `
Examples:
  munival find "Rio de Janeiro"
  munival classify "Nova Iguaçu" "ISS DIGITAL"
  munival --format json list --state RJ
  munival serve --http 127.0.0.1:8080

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
	flagSet.SetOutput(io.Discard)
}
