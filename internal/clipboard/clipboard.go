// Package clipboard copies generated passwords to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
)

var (
	ErrNothingToCopy = errors.New("first generate a password to copy")
	ErrUnsupported   = errors.New("clipboard is not available on this system")
)

// ClipboardError reports a failed copy. It never reflects generator state.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("failed to copy password: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// Writer stores text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copier performs clipboard writes without blocking past ctx.
type Copier struct {
	w Writer
}

// NewCopier returns a Copier backed by w. A nil w uses the system clipboard.
func NewCopier(w Writer) *Copier {
	if w == nil {
		w = System{}
	}
	return &Copier{w: w}
}

// Copy places text on the clipboard. Failures are returned as *ClipboardError.
func (c *Copier) Copy(ctx context.Context, text string) error {
	if text == "" {
		return &ClipboardError{Err: ErrNothingToCopy}
	}

	done := make(chan error, 1)
	go func() {
		done <- c.w.WriteAll(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			slog.Warn("clipboard write failed", "error", err)
			return &ClipboardError{Err: err}
		}
		return nil
	case <-ctx.Done():
		return &ClipboardError{Err: ctx.Err()}
	}
}
