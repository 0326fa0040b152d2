package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/wippyai/calculator/engine"
	"github.com/wippyai/calculator/keypad"
	"github.com/wippyai/calculator/server"
	"github.com/wippyai/calculator/session"
)

func main() {
	var cfg config
	flag.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	flag.BoolVar(&cfg.mcp, "mcp", false, "Serve the calculator as MCP tools on stdio")
	flag.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.StringVar(&cfg.sessionID, "session", "", "Session ID (random if empty)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: calc [-log-level lvl] [-log-file path] keys...")
		fmt.Fprintln(os.Stderr, "       calc < keys.txt   (one key sequence per line)")
		fmt.Fprintln(os.Stderr, "       calc -i           (interactive mode)")
		fmt.Fprintln(os.Stderr, "       calc -mcp         (MCP server on stdio)")
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg.keys = flag.Args()

	// A bare invocation on a terminal has nothing to read, so open the keypad.
	if !cfg.mcp && len(cfg.keys) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		cfg.interactive = true
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, err := cfg.newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	engine.SetLogger(logger.Named("engine"))

	s := session.New().WithLogger(logger)
	if cfg.sessionID != "" {
		s.WithID(cfg.sessionID)
	}

	switch {
	case cfg.mcp:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.NewCalculatorServer(s, logger).Serve(ctx, os.Stdin, os.Stdout)
	case cfg.interactive:
		return runInteractive(s)
	default:
		return runKeys(os.Stdout, s, os.Stdin, cfg.keys)
	}
}

// runKeys presses the keys given as arguments, or each line of in when there
// are none, printing the display after every sequence and the history last.
func runKeys(w io.Writer, s *session.Session, in io.Reader, args []string) error {
	if len(args) > 0 {
		if err := pressLine(w, s, strings.Join(args, " ")); err != nil {
			return err
		}
		printHistory(w, s.State())
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := pressLine(w, s, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read keys: %w", err)
	}
	printHistory(w, s.State())
	return nil
}

func pressLine(w io.Writer, s *session.Session, line string) error {
	labels, err := keypad.Tokenize(line)
	if err != nil {
		return err
	}
	st, err := s.PressAll(labels)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, st.Display)
	return nil
}

func printHistory(w io.Writer, st engine.State) {
	if st.History.Len() == 0 {
		return
	}
	fmt.Fprintln(w, "\nHistory:")
	for _, entry := range st.History.Items() {
		fmt.Fprintf(w, "  %s\n", entry)
	}
}
