// Command walker loads a field and a script, interprets the script
// against the field, and reports SUCCESS, FAILURE, or FATAL.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/kvande/gladewalker/glade"
	"github.com/kvande/gladewalker/interp"
	"github.com/kvande/gladewalker/lang"
	"github.com/kvande/gladewalker/render"
	"github.com/kvande/gladewalker/runtime"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseConfig(args)
	if err != nil {
		return 2
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger := newLogger(level, cfg.LogFormat)

	field, err := glade.Load(cfg.FieldPath)
	if err != nil {
		return fatal(logger, errors.Wrap(err, "loading field"))
	}
	field.Seed(cfg.Seed)
	logger.Info("field loaded", "path", cfg.FieldPath, "last_target", field.LastTarget, "seed", cfg.Seed)

	source, err := os.ReadFile(cfg.ScriptPath)
	if err != nil {
		return fatal(logger, errors.Wrap(err, "reading script"))
	}

	ctx := runtime.NewContext(field)
	block, err := lang.Parse(string(source), ctx)
	if err != nil {
		return fatal(logger, errors.Wrap(err, "parsing script"))
	}
	logger.Info("script parsed", "path", cfg.ScriptPath, "statements", len(block), "spent_at_parse", ctx.Ledger.Spent())

	result := interp.New(ctx).Run(block)
	logger.Debug("run finished", "outcome", int(result.Outcome), "cost", result.Cost)

	if result.Outcome == interp.Fatal {
		return fatal(logger, errors.Wrap(result.Err, "interpreting script"))
	}

	fmt.Println(result.Banner())

	if cfg.Snapshot {
		showSnapshot(logger, field)
	}

	return result.ExitCode()
}

func showSnapshot(logger *Logger, field *glade.Field) {
	if !render.IsTTY() {
		logger.Info("snapshot skipped: stdout is not a terminal")
		return
	}
	if err := render.Snapshot(field); err != nil {
		logger.Info("snapshot failed", "error", err.Error())
	}
}

func fatal(logger *Logger, err error) int {
	fmt.Println("FATAL:", err)
	logger.Debug("fatal", "error", err.Error())
	return 2
}
