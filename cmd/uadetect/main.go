// Command uadetect classifies User-Agent strings and prints one JSON object
// per input line.
//
// Usage:
//
//	uadetect [flags] [user-agent ...]
//
// Without arguments, User-Agent strings are read from stdin, one per line.
// Configuration is read from UADETECTOR_* environment variables and an
// optional .env file; flags override it.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/uadetector"
	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/logger"
)

// maxLineSize bounds a single stdin line.
const maxLineSize = 64 * 1024

type result struct {
	UserAgent string `json:"user_agent"`
	Found     bool   `json:"found"`
	Short     string `json:"short,omitempty"`
	uadetector.Info
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is separated from main for testability.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := uadetector.LoadConfig()
	if err != nil {
		return err
	}

	hints := map[string]string{}
	verbose := false

	fset := flag.NewFlagSet("uadetect", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.TextVar(&cfg.VersionTruncation, "truncation", cfg.VersionTruncation, "version truncation: none, major, minor, patch or build")
	fset.StringVar(&cfg.RulesDir, "rules", cfg.RulesDir, "directory with YAML rule files (default: embedded corpus)")
	fset.BoolVar(&cfg.SkipBotDetection, "skip-bots", cfg.SkipBotDetection, "disable bot detection")
	fset.IntVar(&cfg.CacheSize, "cache", cfg.CacheSize, "in-memory result cache size, 0 disables it")
	fset.BoolVar(&verbose, "v", false, "debug logging to stderr")
	fset.Func("hint", "client hint header as `name=value`, may be repeated", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid hint %q, want name=value", s)
		}
		hints[strings.TrimSpace(name)] = value
		return nil
	})
	if err := fset.Parse(args); err != nil {
		return err
	}

	opts, closeCache, err := cfg.Options(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = closeCache() }()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts = append(opts, uadetector.WithLogger(logger.New(
		logger.WithTextFormatter(),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component("cli")),
	)))

	det, err := uadetector.New(opts...)
	if err != nil {
		return err
	}

	parsed := clienthints.FromMap(hints)
	enc := json.NewEncoder(stdout)
	emit := func(ua string) error {
		info, ok := det.DetectHints(ua, parsed)
		r := result{UserAgent: ua, Found: ok, Info: info}
		if ok {
			r.Short = info.ShortIdentifier()
		}
		return enc.Encode(r)
	}

	if fset.NArg() > 0 {
		for _, ua := range fset.Args() {
			if err := emit(ua); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		ua := strings.TrimSpace(scanner.Text())
		if ua == "" {
			continue
		}
		if err := emit(ua); err != nil {
			return err
		}
	}
	return scanner.Err()
}
