// Package config loads the logging configuration of the IDE from an
// optional .env file, the environment, and command-line flags.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/philipp01105/idelog/core"
	"github.com/philipp01105/idelog/logger"
)

// Environment variables read by Load
const (
	EnvStdout    = "IDELOG_STDOUT"
	EnvFile      = "IDELOG_FILE"
	EnvVerbosity = "IDELOG_VERBOSITY"
)

// Config holds the service settings plus the CLI's own options
type Config struct {
	// WriteStdout echoes every line to standard output
	WriteStdout bool
	// FilePath enables append-only logging to a file when non-empty
	FilePath string
	// Verbosity is the number of IncreaseVerbosity calls to make
	Verbosity int
	// Domain is the domain used for lines emitted by the CLI
	Domain string
	// Level is the level used for lines emitted by the CLI
	Level core.Level
	// Args are the positional arguments left after flag parsing
	Args []string
}

// countFlag is a flag that counts how many times it was given, like -v -v
type countFlag int

func (c *countFlag) String() string {
	return strconv.Itoa(int(*c))
}

func (c *countFlag) Set(s string) error {
	// -v=3 sets the count directly; a bare -v adds one.
	if s == "true" {
		*c++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.Errorf("invalid verbosity %q", s)
	}
	*c = countFlag(n)
	return nil
}

func (c *countFlag) IsBoolFlag() bool {
	return true
}

// levelFlag parses a level name
type levelFlag struct {
	level *core.Level
}

func (l levelFlag) String() string {
	if l.level == nil {
		return ""
	}
	return l.level.String()
}

func (l levelFlag) Set(s string) error {
	level, ok := core.ParseLevel(s)
	if !ok {
		return errors.Errorf("unknown level %q", s)
	}
	*l.level = level
	return nil
}

// Load reads the optional .env file in the working directory, then the
// IDELOG_* environment variables, then the flags in args. Flags win over
// the environment.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Domain: "idelog",
		Level:  core.WarningLevel,
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	verbosity := countFlag(cfg.Verbosity)
	fs.BoolVar(&cfg.WriteStdout, "stdout", cfg.WriteStdout, "Echo log lines to standard output")
	fs.StringVar(&cfg.FilePath, "log-file", cfg.FilePath, "Append log lines to this file")
	fs.StringVar(&cfg.Domain, "domain", cfg.Domain, "Domain for emitted lines")
	fs.Var(levelFlag{&cfg.Level}, "level", "Level for emitted lines (error, critical, warning, message, info, debug, trace); message and below need -v")
	fs.Var(&verbosity, "v", "Increase verbosity; repeat for more (-v -v) or give a count (-v=3)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	cfg.Verbosity = int(verbosity)
	cfg.Args = fs.Args()
	return cfg, nil
}

func (c *Config) loadEnv() error {
	if raw := strings.TrimSpace(os.Getenv(EnvStdout)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvStdout)
		}
		c.WriteStdout = v
	}
	c.FilePath = strings.TrimSpace(os.Getenv(EnvFile))
	if raw := strings.TrimSpace(os.Getenv(EnvVerbosity)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return errors.Errorf("parse %s: invalid verbosity %q", EnvVerbosity, raw)
		}
		c.Verbosity = v
	}
	return nil
}

// Apply initializes svc with the configured destinations and raises its
// verbosity. Counts above the TRACE threshold show nothing more and are
// clamped.
func (c *Config) Apply(svc *logger.Service) {
	svc.Init(c.WriteStdout, c.FilePath)
	n := min(c.Verbosity, core.TraceLevel.MinVerbosity())
	for i := 0; i < n; i++ {
		svc.IncreaseVerbosity()
	}
}
