package minimarket

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestScanner(t *testing.T) {
	input := "7591001000015\n\n  7591001000022  \nfin\n"
	var tokens []string
	s := OpenScanner(strings.NewReader(input), func(code string) {
		tokens = append(tokens, code)
	})
	if err := s.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}

	want := []string{"7591001000015", "7591001000022", "fin"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %q, want %q", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestScannerEmptyStream(t *testing.T) {
	s := OpenScanner(strings.NewReader(""), func(code string) {
		t.Errorf("unexpected token %q", code)
	})
	if err := s.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestScannerReadError(t *testing.T) {
	boom := errors.New("device unplugged")
	s := OpenScanner(failingReader{err: boom}, func(string) {})
	if err := s.Wait(); !errors.Is(err, boom) {
		t.Errorf("Wait() = %v, want the read error", err)
	}
}

func TestScannerCleanEOF(t *testing.T) {
	// io.EOF is the normal end of stream, not an error
	s := OpenScanner(failingReader{err: io.EOF}, func(string) {})
	if err := s.Wait(); err != nil {
		t.Errorf("Wait() = %v, want nil on EOF", err)
	}
}
