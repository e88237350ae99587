package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// TerminalNotifier writes alerts to a terminal, ringing the bell first.
type TerminalNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	noBell bool
}

// NewTerminalNotifier writes to out. The bell is skipped when bell is false.
func NewTerminalNotifier(out io.Writer, bell bool) *TerminalNotifier {
	return &TerminalNotifier{out: out, noBell: !bell}
}

// Authorize always succeeds; a terminal needs no permission.
func (notifier *TerminalNotifier) Authorize(context.Context) (bool, error) {
	return notifier.out != nil, nil
}

// Notify prints the message on its own line.
func (notifier *TerminalNotifier) Notify(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	bell := "\a"
	if notifier.noBell {
		bell = ""
	}
	if _, err := fmt.Fprintf(notifier.out, "%s** %s %s\n", bell, message.Title, message.Body); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
