package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"k8s.io/utils/clock"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

// spinnerFrames is a braille scan pattern.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinnerInterval = 80 * time.Millisecond

// Spinner draws an animated one-line status while a one-shot command
// (snapshot, export) waits on the collector, then a final line with the
// outcome and elapsed time.
type Spinner struct {
	clock clock.WithTicker
	out   io.Writer

	mu       sync.Mutex // Guards everything below and writes to out
	label    string
	state    SpinnerState
	frame    int
	started  time.Time
	stop     chan struct{}
	done     chan struct{}
	drawn    int // Visible width of the line on screen
	finished bool
}

// NewSpinner creates a spinner that draws to out.
func NewSpinner(label string, out io.Writer) *Spinner {
	return &Spinner{
		clock: clock.RealClock{},
		out:   out,
		label: label,
		state: SpinnerPending,
	}
}

// WithClock replaces the clock driving frames and timing. Call before Start.
func (s *Spinner) WithClock(c clock.WithTicker) *Spinner {
	if c != nil {
		s.clock = c
	}
	return s
}

// Start begins the animation. Calling Start on a running or finished
// spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.stop != nil || s.finished {
		s.mu.Unlock()
		return
	}
	s.state = SpinnerInProgress
	s.started = s.clock.Now()
	stop, done := make(chan struct{}), make(chan struct{})
	s.stop, s.done = stop, done
	ticker := s.clock.NewTicker(spinnerInterval)
	s.drawLocked()
	s.mu.Unlock()

	go s.animate(ticker, stop, done)
}

// Stop halts the animation and erases the line without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop = nil
	s.mu.Unlock()
	if stop == nil {
		return
	}

	close(stop)
	<-done

	s.mu.Lock()
	s.clearLocked()
	s.mu.Unlock()
}

// Success stops the spinner and prints a success line.
func (s *Spinner) Success() {
	s.finish(SpinnerSuccess)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail() {
	s.finish(SpinnerFailed)
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (s *Spinner) finish(state SpinnerState) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.finished = true
	s.state = state

	symbol, color := SymbolPending, ColorMuted
	switch state {
	case SpinnerSuccess:
		symbol, color = SymbolComplete, ColorSuccess
	case SpinnerFailed:
		symbol, color = SymbolFail, ColorError
	}

	elapsed := time.Duration(0)
	if !s.started.IsZero() {
		elapsed = s.clock.Since(s.started)
	}
	timing := lipgloss.NewStyle().Foreground(ColorMuted).Render(formatDuration(elapsed))
	fmt.Fprintf(s.out, "%s %s %s\n", lipgloss.NewStyle().Foreground(color).Render(symbol), s.label, timing)
}

// animate owns stop and done. Stop clears the fields, so the loop must
// never read them from s.
func (s *Spinner) animate(ticker clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.drawLocked()
			s.mu.Unlock()
		}
	}
}

// drawLocked redraws the animated line in place. s.mu must be held.
func (s *Spinner) drawLocked() {
	colorIndex := (s.frame / 2) % len(GradientColors)
	symbol := lipgloss.NewStyle().Foreground(GradientColors[colorIndex]).Render(spinnerFrames[s.frame])
	line := fmt.Sprintf("%s %s...", symbol, s.label)

	s.clearLocked()
	fmt.Fprint(s.out, line)
	s.drawn = lipgloss.Width(line)
}

// clearLocked blanks the previously drawn line. s.mu must be held.
func (s *Spinner) clearLocked() {
	if s.drawn == 0 {
		return
	}
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", s.drawn)+"\r")
	s.drawn = 0
}

// formatDuration formats a duration for display (e.g., "0.05s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
