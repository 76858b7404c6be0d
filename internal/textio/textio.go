// ABOUTME: Text source (clipboard, arguments, stdin lines) and sink (stdout, clipboard)
// ABOUTME: Source yields whole lines for the transformer; Sink joins them with newlines

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	pilog "github.com/mauromedda/mockcase/internal/log"
	"github.com/mauromedda/mockcase/pkg/clipboard"
)

// InteractiveHint is logged before reading from a terminal.
const InteractiveHint = "reading from stdin; end input with Ctrl-D"

// ErrNoClipboard is returned when clipboard I/O is requested without a clipboard.
var ErrNoClipboard = errors.New("no clipboard configured")

// Source supplies the text to mock.
type Source struct {
	// Args are positional command-line arguments, each mocked as its own line.
	Args []string
	// FromClipboard takes precedence over Args and Stdin.
	FromClipboard bool
	Clipboard     clipboard.Clipboard
	Stdin         io.Reader
	// Interactive reports whether Stdin is a terminal. Defaults to StdinIsTerminal.
	Interactive func() bool
}

// Lines returns the input as lines. Clipboard contents are a single entry,
// newlines included.
func (s Source) Lines() ([]string, error) {
	if s.FromClipboard {
		if s.Clipboard == nil {
			return nil, ErrNoClipboard
		}
		text, err := s.Clipboard.Read()
		if err != nil {
			return nil, fmt.Errorf("reading input from clipboard: %w", err)
		}
		return []string{text}, nil
	}

	if len(s.Args) > 0 {
		return append([]string(nil), s.Args...), nil
	}

	in := s.Stdin
	if in == nil {
		in = os.Stdin
	}
	interactive := s.Interactive
	if interactive == nil {
		interactive = StdinIsTerminal
	}
	if interactive() {
		pilog.Info(InteractiveHint)
	}

	lines, err := ReadLines(in)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// ReadLines splits r into lines, dropping "\n" and "\r\n" terminators.
// A final line without a terminator is kept. Lines that are not valid UTF-8
// are skipped with a warning.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if utf8.ValidString(line) {
				lines = append(lines, line)
			} else {
				pilog.Warn("skipping input line %d: not valid UTF-8", n)
			}
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// StdinIsTerminal reports whether os.Stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Sink receives mocked text.
type Sink struct {
	Stdout      io.Writer
	ToClipboard bool
	Clipboard   clipboard.Clipboard
}

// Emit joins lines with "\n", copies the result to the clipboard when
// requested, then prints it followed by a newline.
func (s Sink) Emit(lines []string) error {
	text := strings.Join(lines, "\n")

	if s.ToClipboard {
		if s.Clipboard == nil {
			return ErrNoClipboard
		}
		if err := s.Clipboard.Write(text); err != nil {
			return fmt.Errorf("writing output to clipboard: %w", err)
		}
		pilog.Debug("copied %d bytes to clipboard", len(text))
	}

	out := s.Stdout
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, text); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}
	return nil
}
