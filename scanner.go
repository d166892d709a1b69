package minimarket

import (
	"bufio"
	"io"
	"strings"
)

// Scanner reads barcode tokens from a stream. USB barcode readers act as
// keyboards: each scan types the digits followed by a newline, so any
// line-oriented reader (stdin at the counter, a serial device, a test
// buffer) works as a source.
type Scanner struct {
	done chan struct{}
	err  error
}

// OpenScanner starts reading lines from r in the background, invoking
// onToken with each non-empty trimmed line. The callback runs on the
// scanner's goroutine.
func OpenScanner(r io.Reader, onToken func(code string)) *Scanner {
	s := &Scanner{done: make(chan struct{})}
	go func() {
		defer close(s.done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			code := strings.TrimSpace(scanner.Text())
			if code == "" {
				continue
			}
			onToken(code)
		}
		s.err = scanner.Err()
	}()
	return s
}

// Wait blocks until the source is exhausted and returns its read error,
// if any.
func (s *Scanner) Wait() error {
	<-s.done
	return s.err
}
