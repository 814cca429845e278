package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	munival "github.com/wagiedev/munival-go"
	"github.com/wagiedev/munival-go/internal/report"
)

type command struct {
	usage   string
	summary string
	run     func(e *env, args []string) error
}

var commandOrder = []string{"find", "classify", "list", "join", "export", "stats", "serve"}

var commands = map[string]command{
	"find": {
		usage:   "find NAME",
		summary: "show a municipality's validator history",
		run:     runFind,
	},
	"classify": {
		usage:   "classify NAME VALIDATOR",
		summary: "classify a validator for a municipality",
		run:     runClassify,
	},
	"list": {
		usage:   "list [--state UF]",
		summary: "list validators with their usage",
		run:     runList,
	},
	"join": {
		usage:   "join [--state UF] [--limit N]",
		summary: "print the joined municipality/validator table",
		run:     runJoin,
	},
	"export": {
		usage:   "export --out FILE [--state UF]",
		summary: "write the joined table report to a file",
		run:     runExport,
	},
	"stats": {
		usage:   "stats",
		summary: "summarise the loaded tables",
		run:     runStats,
	},
	"serve": {
		usage:   "serve [--http ADDR]",
		summary: "serve the lookups as MCP tools (stdio unless --http)",
		run:     runServe,
	},
}

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	return flagSet
}

func parseFlags(flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		return usagef("%s: %v", flagSet.Name(), err)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func runFind(e *env, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return usagef("find: municipality name is required")
	}

	c, err := e.catalog()
	if err != nil {
		return err
	}

	result, err := c.Find(name)
	if err != nil {
		return err
	}

	if e.format == formatJSON {
		return writeJSON(e.stdout, result)
	}

	_, err = io.WriteString(e.stdout, report.Find(result))

	return err
}

func runClassify(e *env, args []string) error {
	if len(args) != 2 {
		return usagef("classify: want a municipality name and a validator, got %d arguments", len(args))
	}

	if strings.TrimSpace(args[0]) == "" || strings.TrimSpace(args[1]) == "" {
		return usagef("classify: municipality name and validator must not be blank")
	}

	c, err := e.catalog()
	if err != nil {
		return err
	}

	result, err := c.Classify(args[0], args[1])
	if err != nil {
		return err
	}

	if e.format == formatJSON {
		return writeJSON(e.stdout, result)
	}

	_, err = io.WriteString(e.stdout, report.Classify(result))

	return err
}

func runList(e *env, args []string) error {
	var state string

	flagSet := newFlagSet("list")
	flagSet.StringVar(&state, "state", "", "only validators used in this state (UF)")

	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	c, err := e.catalog()
	if err != nil {
		return err
	}

	list := c.ListValidators(state)

	if e.format == formatJSON {
		return writeJSON(e.stdout, list)
	}

	_, err = io.WriteString(e.stdout, report.Validators(list, state))

	return err
}

func runJoin(e *env, args []string) error {
	var (
		state string
		limit int
	)

	flagSet := newFlagSet("join")
	flagSet.StringVar(&state, "state", "", "only rows of this state (UF)")
	flagSet.IntVar(&limit, "limit", 0, "stop after N rows (0 prints all)")

	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	if limit < 0 {
		return usagef("join: --limit must not be negative")
	}

	c, err := e.catalog()
	if err != nil {
		return err
	}

	rows := c.Rows(state)

	if e.format == formatJSON {
		if limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}

		return writeJSON(e.stdout, rows)
	}

	_, err = io.WriteString(e.stdout, report.Rows(rows, limit))

	return err
}

func runExport(e *env, args []string) error {
	var out, state string

	flagSet := newFlagSet("export")
	flagSet.StringVar(&out, "out", "", "output file")
	flagSet.StringVar(&state, "state", "", "only rows of this state (UF)")

	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	if out == "" {
		return usagef("export: --out is required")
	}

	c, err := e.catalog()
	if err != nil {
		return err
	}

	rows := c.Rows(state)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if e.format == formatJSON {
		err = writeJSON(f, rows)
	} else {
		err = report.Export(f, rows, state, time.Now())
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	e.logger.Info("export written", "path", out, "rows", len(rows))
	fmt.Fprintln(e.stdout, e.style.success.Render(fmt.Sprintf("%d registros exportados para %s", len(rows), out)))

	return nil
}

func runStats(e *env, args []string) error {
	if len(args) > 0 {
		return usagef("stats: unexpected argument %q", args[0])
	}

	c, err := e.catalog()
	if err != nil {
		return err
	}

	stats := c.Stats()

	if e.format == formatJSON {
		return writeJSON(e.stdout, stats)
	}

	_, err = io.WriteString(e.stdout, report.Stats(stats))

	return err
}

func runServe(e *env, args []string) error {
	addr := e.cfg.Server.HTTPAddr

	flagSet := newFlagSet("serve")
	flagSet.StringVar(&addr, "http", addr, "serve streamable HTTP on this address instead of stdio")

	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := munival.NewToolServer(munival.NewLazyCatalog(e.catalogOptions()...), munival.ToolServerConfig{
		Name:    e.cfg.Server.Name,
		Logger:  e.logger,
		Metrics: munival.NewToolMetrics(reg),
	})

	if addr == "" {
		return server.Run(e.ctx, &mcp.StdioTransport{})
	}

	fmt.Fprintln(e.stderr, e.errStyle.title.Render("munival "+munival.Version)+" "+
		e.errStyle.muted.Render("MCP em http://"+addr+"/mcp"))

	return server.ListenAndServe(e.ctx, addr, e.cfg.Server.ShutdownTimeout, reg)
}
