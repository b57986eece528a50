package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/ubncheck/internal/app/ubn"
)

// Stats summarises a session.
type Stats struct {
	Checked  int
	Valid    int
	Duration time.Duration
}

// Session reads numbers line by line and writes a verdict for each of them.
type Session struct {
	validator ubn.Validator
	in        io.Reader
	out       io.Writer
	clock     clock.Clock
	stats     Stats
}

// NewSession creates a new Session instance.
func NewSession(validator ubn.Validator, in io.Reader, out io.Writer, clock clock.Clock) *Session {
	return &Session{
		validator: validator,
		in:        in,
		out:       out,
		clock:     clock,
	}
}

// Stats returns the counters of the session.
func (s *Session) Stats() Stats {
	return s.stats
}

// Run prints the banner and handles lines until the quit command, end of input or context cancellation.
// It returns an error only when reading input or writing output fails.
func (s *Session) Run(ctx context.Context) error {
	started := s.clock.Now()
	defer func() {
		s.stats.Duration = s.clock.Since(started)
		slog.Debug("Session finished", "checked", s.stats.Checked, "valid", s.stats.Valid, "duration", s.stats.Duration)
	}()

	if err := s.write(banner, firstPrompt); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go s.readLines(lines, readErr, stop)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Session interrupted")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("%w: %w", ubn.ErrReadInput, err)
			}
			return nil
		case line := <-lines:
			r := parseRequest(line)
			if r.quit {
				return s.write(exitMessage)
			}

			if err := s.write(s.handleRequest(r).String(), nextPrompt); err != nil {
				return err
			}
		}
	}
}

// readLines reads input and forwards every line until input ends or stop is closed.
// Lines have no length limit. A final line without a newline is still forwarded.
// A nil error is sent on end of input.
func (s *Session) readLines(lines chan<- string, readErr chan<- error, stop <-chan struct{}) {
	reader := bufio.NewReader(s.in)
	for {
		line, err := reader.ReadString('\n')
		if err == nil || line != "" {
			select {
			case <-stop:
				return
			case lines <- strings.TrimSuffix(line, "\n"):
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			readErr <- err
			return
		}
	}
}

// handleRequest validates the number and returns a corresponding response.
func (s *Session) handleRequest(r request) response {
	s.stats.Checked++

	resp := response{
		status: Valid,
		number: r.number,
	}

	err := s.validator.Check(r.number)
	if err != nil {
		resp.status = Invalid
	} else {
		s.stats.Valid++
	}

	slog.Debug("Handling request", "request", r.number, "response", resp.status, "reason", err)

	return resp
}

func (s *Session) write(messages ...string) error {
	for _, m := range messages {
		if _, err := fmt.Fprintln(s.out, m); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
