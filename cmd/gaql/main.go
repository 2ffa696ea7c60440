// Interactive console for running Google Ads Query Language (GAQL) queries.
//
// Configuration (env vars, overriding ~/.config/gaql/config.json or
// $GAQL_CONFIG):
//
//	CLIENT_CUSTOMER_ID, CLIENT_ID, CLIENT_SECRET,
//	DEVELOPER_TOKEN, LOGIN_CUSTOMER_ID, REFRESH_TOKEN  (required for the ads backend)
//	GAQL_BACKEND=ads|warehouse                          (optional, default ads)
//	GAQL_API_VERSION=v21                                (optional)
//	GAQL_WAREHOUSE_ENGINE=postgres|mysql|sqlite         (optional, default postgres)
//	GAQL_WAREHOUSE_DSN=<dsn>                            (optional, auto-connects if set)
//
// Usage:
//
//	go run ./cmd/gaql
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bawdo/gaql"
	"github.com/bawdo/gaql/internal/config"
	"github.com/ergochat/readline"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	prompt             = "GAQL> "
	continuationPrompt = "  ...> "
)

func main() {
	os.Exit(run())
}

func run() int {
	con := newConsole(os.Stderr, useColor())

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		con.errorf("%v", err)
		return 1
	}

	sess := NewSession(cfg)
	sess.colWidth = termColWidth()
	defer func() { _ = sess.Close() }()

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    &gaqlCompleter{sess: sess},
		Painter:         newPainter(con.color),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		con.errorf("readline init: %v", err)
		return 1
	}
	defer func() { _ = rl.Close() }()

	con.infof("Welcome to GAQL Console v%s.", gaql.Version)
	con.infof("Use [Enter] to submit, end a line with \\ to continue it. \\help for commands, [^D] to quit.\n")

	if cfg.Backend == config.BackendWarehouse && cfg.Warehouse.DSN != "" {
		con.infof("[Config] Connecting via GAQL_WAREHOUSE_DSN...")
		if err := sess.Execute(context.Background(), `\connect`); err != nil {
			con.warnf("warehouse connect failed: %v", err)
		}
	}

	loop(rl, sess, con)
	fmt.Println()
	return 0
}

// loop reads queries until EOF or \quit. Lines ending in a backslash are
// joined with the next line.
func loop(rl *readline.Instance, sess *Session, con *console) {
	var buf []string
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			// io.EOF on ^D.
			return
		}

		if rest, ok := strings.CutSuffix(line, `\`); ok {
			buf = append(buf, rest)
			rl.SetPrompt(continuationPrompt)
			continue
		}
		input := strings.TrimSpace(strings.Join(append(buf, line), "\n"))
		buf = nil
		rl.SetPrompt(prompt)

		if input == "" {
			con.infof("Empty GAQL query. Use [^D] to quit.\n")
			continue
		}
		if isQuit(input) {
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = sess.Execute(ctx, input)
		interrupted := ctx.Err() != nil
		stop()
		switch {
		case interrupted:
			con.errorf("Response stream interrupted")
		case err != nil:
			con.errorf("%v", err)
		}
	}
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case `\quit`, `\q`, "exit", "quit":
		return true
	}
	return false
}

// console writes status lines: errors in red, info in blue.
type console struct {
	w     io.Writer
	color bool
}

func newConsole(w io.Writer, color bool) *console {
	return &console{w: w, color: color}
}

func (c *console) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	for _, line := range strings.Split(msg, "\n") {
		c.println(ansiRed, "  Error: "+line)
	}
}

func (c *console) warnf(format string, args ...any) {
	c.println(ansiRed, "  Warning: "+fmt.Sprintf(format, args...))
}

func (c *console) infof(format string, args ...any) {
	c.println(ansiBlue, fmt.Sprintf(format, args...))
}

func (c *console) println(style, s string) {
	if c.color {
		s = style + s + ansiReset
	}
	_, _ = fmt.Fprintln(c.w, s)
}

// useColor reports whether stdout is a terminal and NO_COLOR is unset.
func useColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// termColWidth caps table cells at half the terminal width.
func termColWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return max(width/2, 10)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gaql_history")
}
