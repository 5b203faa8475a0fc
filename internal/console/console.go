package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// CommandHandler is called for every non-empty input line.
type CommandHandler func(command string) string

// Prompt is written before each line is read.
const Prompt = "> "

// Run reads commands line by line, dispatches them to handler and writes the
// replies. It returns nil on EOF or a quit command, and ctx.Err() as soon as
// ctx is cancelled, even while waiting for input. No line is dispatched after
// cancellation.
func Run(ctx context.Context, r io.Reader, w io.Writer, handler CommandHandler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(r, done)

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("console stopped")
			return err
		}
		if _, err := io.WriteString(w, Prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			logger.Info("console stopped")
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read command: %w", err)
				}
				return nil
			}
			line = l
		}
		// Both cases may be ready at once; cancellation wins.
		if err := ctx.Err(); err != nil {
			logger.Info("console stopped")
			return err
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if isQuit(text) {
			logger.Info("console quit")
			return nil
		}

		logger.Debug("received command", zap.String("command", text))
		reply := handler(text)
		if reply == "" {
			continue
		}
		if !strings.HasSuffix(reply, "\n") {
			reply += "\n"
		}
		if _, err := io.WriteString(w, reply); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
	}
}

// readLines scans r on its own goroutine. lines is closed at EOF or on a read
// error, after the error (possibly nil) has been sent on the returned error
// channel. The goroutine exits early once done is closed; a Read already in
// progress finishes first.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func isQuit(text string) bool {
	switch strings.ToLower(text) {
	case "quit", "exit", "q":
		return true
	}
	return false
}
