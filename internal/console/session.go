// Package console is a line-oriented terminal front end for the Pomodoro engine.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"pomodoro/internal/core/pomodoro"
)

const helpText = "commands: start (s), pause (p), reset (r), skip (k), status (t), help (h), quit (q)"

// Config contains options for Session.
type Config struct {
	// Live redraws the status line in place on every tick. Otherwise ticks are
	// printed once per minute.
	Live bool
}

// Session reads commands from in and renders engine state to out.
type Session struct {
	engine   *pomodoro.Engine
	in       io.Reader
	out      io.Writer
	config   Config
	logger   *zap.Logger
	renderer *Renderer
	last     pomodoro.Snapshot
	dirty    bool
}

// New creates a console session for engine.
func New(engine *pomodoro.Engine, in io.Reader, out io.Writer, config Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		engine:   engine,
		in:       in,
		out:      out,
		config:   config,
		logger:   logger,
		renderer: NewRenderer(out),
	}
}

// Run processes commands until quit, end of input or ctx is done. The engine
// is closed on return.
func (session *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := session.engine.Subscribe(64)
	defer session.engine.Close()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go session.readLines(ctx, lines, readErr)

	session.println(helpText)
	session.printStatus(session.engine.Snapshot())

	for {
		select {
		case <-ctx.Done():
			session.drain(events)
			session.finish()
			return ctx.Err()
		case err := <-readErr:
			session.drain(events)
			session.finish()
			return err
		case line, ok := <-lines:
			if !ok {
				session.drain(events)
				session.finish()
				return nil
			}
			if quit := session.handle(line); quit {
				session.drain(events)
				session.finish()
				return nil
			}
		case event, ok := <-events:
			if !ok {
				return nil
			}
			session.render(event)
		}
	}
}

func (session *Session) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(session.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		readErr <- fmt.Errorf("read commands: %w", err)
	}
}

func (session *Session) handle(line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return false
	case "start", "s":
		session.engine.Start()
	case "pause", "p":
		session.engine.Pause()
	case "reset", "r":
		session.engine.Reset()
	case "skip", "k":
		session.engine.Skip()
	case "status", "t":
		session.printStatus(session.engine.Snapshot())
	case "help", "h", "?":
		session.println(helpText)
	case "quit", "q", "exit":
		return true
	default:
		session.logger.Debug("unknown console command", zap.String("command", command))
		session.println(fmt.Sprintf("unknown command %q; %s", command, helpText))
	}
	return false
}

func (session *Session) drain(events <-chan pomodoro.Event) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			session.render(event)
		default:
			return
		}
	}
}

func (session *Session) render(event pomodoro.Event) {
	switch event.Type {
	case pomodoro.EventSessionCompleted:
		session.println(session.renderer.Completion(event.Completion))
		session.printStatus(event.Snapshot)
	case pomodoro.EventStateChange:
		snapshot := event.Snapshot
		ticked := isTick(session.last, snapshot)
		switch {
		case ticked && session.config.Live:
			session.redraw(snapshot)
		case ticked && snapshot.RemainingSeconds%60 != 0:
			session.last = snapshot
		default:
			session.printStatus(snapshot)
		}
	}
}

func isTick(previous, next pomodoro.Snapshot) bool {
	return previous.Running && next.Running &&
		previous.Session == next.Session &&
		next.RemainingSeconds == previous.RemainingSeconds-1
}

func (session *Session) printStatus(snapshot pomodoro.Snapshot) {
	session.println(session.renderer.Status(snapshot))
	session.last = snapshot
}

func (session *Session) redraw(snapshot pomodoro.Snapshot) {
	fmt.Fprint(session.out, "\r\033[K"+session.renderer.Status(snapshot))
	session.last = snapshot
	session.dirty = true
}

func (session *Session) println(text string) {
	if session.dirty {
		fmt.Fprintln(session.out)
		session.dirty = false
	}
	fmt.Fprintln(session.out, text)
}

func (session *Session) finish() {
	if session.dirty {
		fmt.Fprintln(session.out)
		session.dirty = false
	}
}
