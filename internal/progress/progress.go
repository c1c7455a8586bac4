// Package progress provides CLI progress indicators. Output goes to stderr
// to keep stdout clean for piping, and TTY detection keeps escape sequences
// out of redirected output.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// interval is the minimum time between redraws.
const interval = 80 * time.Millisecond

// Spinner shows an animated counter for operations of unknown length,
// such as a search walking a tree.
type Spinner struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	frame   int
	count   int
	width   int
	last    time.Time
	isTTY   bool
	frames  []string
	running bool
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return NewSpinnerWriter(os.Stderr, label, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewSpinnerWriter creates a spinner on w. When tty is false every method
// is a no-op.
func NewSpinnerWriter(w io.Writer, label string, tty bool) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		isTTY:  tty,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isTTY {
		return
	}
	s.running = true
	s.last = time.Now()
	s.draw()
}

// Tick counts one unit of work and advances the animation if enough time
// has passed since the last frame.
func (s *Spinner) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isTTY || !s.running {
		return
	}
	s.count++
	if now := time.Now(); now.Sub(s.last) >= interval {
		s.last = now
		s.frame = (s.frame + 1) % len(s.frames)
		s.draw()
	}
}

// Count returns the number of ticks since Start.
func (s *Spinner) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isTTY || !s.running {
		return
	}
	s.running = false
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
}

// draw renders the current frame. The caller holds mu.
func (s *Spinner) draw() {
	line := fmt.Sprintf("%s %s... %d", s.frames[s.frame], s.label, s.count)
	if n := len([]rune(line)); n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.w, "\r%s", line)
}
