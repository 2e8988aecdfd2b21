package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts and rich rendering may be used.
// Without an override it inspects the terminal state of Stdin and Stdout.
type HeadlessManager struct {
	forced *bool
	in     *os.File
	out    *os.File
}

// NewHeadlessManager creates a HeadlessManager watching os.Stdin and os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{in: os.Stdin, out: os.Stdout}
}

// IsHeadless reports whether stdin is not a terminal, so prompts cannot run.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.in)
}

// IsOutputTerminal reports whether stdout is a terminal. Markdown is only
// rendered with glamour styling when it is.
func (h *HeadlessManager) IsOutputTerminal() bool {
	if h.forced != nil {
		return !*h.forced
	}
	return isTerminal(h.out)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
