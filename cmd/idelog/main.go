// Command idelog writes lines to the IDE log the same way the IDE does.
//
// Usage:
//
//	idelog [-stdout] [-log-file path] [-v ...] [-domain name] [-level name] [message...]
//
// With no message arguments, every line read from standard input is
// emitted as its own record. Lines are written at WARNING unless -level
// says otherwise; MESSAGE and lower levels also need enough -v flags.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipp01105/idelog/config"
	"github.com/philipp01105/idelog/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	cfg, err := config.Load("idelog", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	svc := logger.NewService()
	cfg.Apply(svc)
	defer func() {
		if err := svc.Shutdown(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}()

	if cfg.FilePath != "" && svc.Stats().OpenFailures > 0 {
		fmt.Fprintf(stderr, "Warning: could not open log file %s\n", cfg.FilePath)
	}

	log := svc.Domain(cfg.Domain)
	if len(cfg.Args) > 0 {
		log.Log(cfg.Level, strings.Join(cfg.Args, " "))
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		log.Log(cfg.Level, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: reading stdin: %v\n", err)
		return 1
	}
	return 0
}
