// ABOUTME: Clipboard capability with read/write and an ErrUnsupported sentinel
// ABOUTME: System uses atotto/clipboard, falling back to pbcopy/xclip/xsel/wl-copy/clip for writes

package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard is reachable on this platform.
var ErrUnsupported = errors.New("clipboard not supported")

// Clipboard reads and writes plain text.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System is the OS clipboard.
type System struct {
	// Hooks over atotto/clipboard and os/exec; a zero System uses the real ones.
	goos        string
	unsupported func() bool
	writeAll    func(string) error
	run         func(cmd string, args []string, stdin string) error
	lookPath    func(string) (string, error)
}

// NewSystem returns the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// Read returns the clipboard contents.
func (s *System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// Write replaces the clipboard contents with text. When atotto/clipboard
// fails, the platform command is tried; if that fails too, both errors are
// returned.
func (s *System) Write(text string) error {
	var primaryErr error
	if !s.isUnsupported() {
		err := s.writeAllFunc()(text)
		if err == nil {
			return nil
		}
		primaryErr = fmt.Errorf("writing clipboard: %w", err)
	}

	cmd, args := s.clipboardCmd()
	if cmd == "" {
		if primaryErr != nil {
			return primaryErr
		}
		return fmt.Errorf("%w on %s", ErrUnsupported, s.platform())
	}

	if err := s.runFunc()(cmd, args, text); err != nil {
		return errors.Join(primaryErr, fmt.Errorf("writing clipboard via %s: %w", cmd, err))
	}
	return nil
}

func (s *System) platform() string {
	if s.goos != "" {
		return s.goos
	}
	return runtime.GOOS
}

func (s *System) isUnsupported() bool {
	if s.unsupported != nil {
		return s.unsupported()
	}
	return clipboard.Unsupported
}

func (s *System) writeAllFunc() func(string) error {
	if s.writeAll != nil {
		return s.writeAll
	}
	return clipboard.WriteAll
}

func (s *System) runFunc() func(string, []string, string) error {
	if s.run != nil {
		return s.run
	}
	return runCmd
}

func runCmd(cmd string, args []string, stdin string) error {
	c := exec.Command(cmd, args...)
	c.Stdin = strings.NewReader(stdin)
	return c.Run()
}

// clipboardCmd returns the first available write command for the current OS.
func (s *System) clipboardCmd() (string, []string) {
	lookPath := s.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return writeCmd(s.platform(), lookPath)
}

func writeCmd(goos string, lookPath func(string) (string, error)) (string, []string) {
	switch goos {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	case "linux", "freebsd", "openbsd", "netbsd":
		candidates := []struct {
			cmd  string
			args []string
		}{
			{"wl-copy", nil},
			{"xclip", []string{"-selection", "clipboard"}},
			{"xsel", []string{"--clipboard", "--input"}},
		}
		for _, c := range candidates {
			if _, err := lookPath(c.cmd); err == nil {
				return c.cmd, c.args
			}
		}
		return "", nil
	default:
		return "", nil
	}
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Unavailable is a clipboard that always fails with ErrUnsupported.
type Unavailable struct{}

func (Unavailable) Read() (string, error) { return "", ErrUnsupported }
func (Unavailable) Write(string) error    { return ErrUnsupported }
