package main

import "flag"

// Config is the CLI's own surface (§6 External Interfaces): two optional
// script/field flags, the ambient logging/snapshot flags that never touch
// the interpreted core, and the seed for the field's Turner{0} source.
type Config struct {
	ScriptPath string
	FieldPath  string
	LogLevel   string
	LogFormat  string
	Snapshot   bool
	Seed       int64
}

func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("walker", flag.ContinueOnError)
	cfg := &Config{}

	fs.StringVar(&cfg.ScriptPath, "c", "./instructions.txt", "script file path")
	fs.StringVar(&cfg.FieldPath, "g", "./glade.csv", "field file path")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "operational log level: quiet|info|debug")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "operational log format: text|json")
	fs.BoolVar(&cfg.Snapshot, "snapshot", false, "show a post-run grid snapshot")
	fs.Int64Var(&cfg.Seed, "seed", 1, "random seed for Turner{0} (0 is normalized to 1)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
