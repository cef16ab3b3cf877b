// Package config provides environment-based configuration for the primstep CLI.
//
// Every setting has a PRIMSTEP_ environment variable and a default; the CLI
// registers flags whose defaults come from the loaded Config, so an explicit
// flag always wins over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// ErrInvalidEnv is returned when a PRIMSTEP_ variable does not parse.
var ErrInvalidEnv = errors.New("config: invalid environment value")

// Config holds the CLI configuration.
type Config struct {
	GraphFile string // path to a TOML/YAML/JSON graph document
	Generate  string // builder spec such as "complete:6"; used when GraphFile is empty
	WriteFile string // optional path to save the graph that was run
	Seed      int64  // RNG seed for generated graphs
	Start     int    // start vertex; only meaningful when StartSet
	StartSet  bool   // Start came from PRIMSTEP_START or -start, not from the graph file
	History   bool   // print one caption per step
	Replay    bool   // step through the history interactively
	LogLevel  string
	LogFormat string
}

// Defaults.
const (
	DefaultSeed      = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// NewConfig loads configuration from environment variables prefixed with
// PRIMSTEP_. Unset variables take the defaults; set but malformed ones are
// reported with ErrInvalidEnv.
func NewConfig() (*Config, error) {
	var env envReader
	cfg := &Config{
		GraphFile: env.lookup("PRIMSTEP_GRAPH", ""),
		Generate:  env.lookup("PRIMSTEP_GENERATE", ""),
		WriteFile: env.lookup("PRIMSTEP_WRITE", ""),
		Seed:      env.asInt64("PRIMSTEP_SEED", DefaultSeed),
		History:   env.asBool("PRIMSTEP_HISTORY", false),
		Replay:    env.asBool("PRIMSTEP_REPLAY", false),
		LogLevel:  env.lookup("PRIMSTEP_LOG_LEVEL", DefaultLogLevel),
		LogFormat: env.lookup("PRIMSTEP_LOG_FORMAT", DefaultLogFormat),
	}
	if raw, ok := os.LookupEnv("PRIMSTEP_START"); ok && raw != "" {
		cfg.Start = int(env.asInt64("PRIMSTEP_START", 0))
		cfg.StartSet = true
	}
	if env.err != nil {
		return nil, env.err
	}

	return cfg, nil
}

// RegisterFlags binds every field to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.GraphFile, "graph", c.GraphFile, "graph document (.toml, .yaml, .yml, .json)")
	fs.StringVar(&c.Generate, "gen", c.Generate, "generate a graph: complete:N, path:N, cycle:N, star:N, wheel:N, sparse:N:P")
	fs.StringVar(&c.WriteFile, "write", c.WriteFile, "save the graph that was run to this file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated graphs")
	fs.Var((*startFlag)(c), "start", "start vertex (default: the graph file's start, else 0)")
	fs.BoolVar(&c.History, "history", c.History, "print every step")
	fs.BoolVar(&c.Replay, "replay", c.Replay, "replay the steps interactively (→/d next, ←/a previous, q quit)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// startFlag records that -start was given, whatever its value.
type startFlag Config

func (f *startFlag) String() string {
	if f == nil || !f.StartSet {
		return ""
	}
	return strconv.Itoa(f.Start)
}

func (f *startFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.Start, f.StartSet = v, true
	return nil
}

// envReader keeps the first parse failure so NewConfig can report it once.
type envReader struct{ err error }

func (e *envReader) lookup(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func (e *envReader) asInt64(key string, defaultValue int64) int64 {
	raw := e.lookup(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		e.fail(key, raw)
		return defaultValue
	}
	return value
}

func (e *envReader) asBool(key string, defaultValue bool) bool {
	raw := e.lookup(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		e.fail(key, raw)
		return defaultValue
	}
	return value
}

func (e *envReader) fail(key, raw string) {
	if e.err == nil {
		e.err = fmt.Errorf("%s=%q: %w", key, raw, ErrInvalidEnv)
	}
}
