// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

var (
	// ErrWriteFailed is the single failure kind of a clipboard write.
	ErrWriteFailed = errors.New("clipboard write failed")
	// ErrUnsupported means no clipboard utility is available on this system.
	ErrUnsupported = fmt.Errorf("%w: no clipboard utility available", ErrWriteFailed)
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// Func adapts a plain function to Writer.
type Func func(ctx context.Context, text string) error

// WriteText calls f.
func (f Func) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System implements Writer using github.com/atotto/clipboard.
type System struct {
	writeAll    func(string) error
	unsupported func() bool
}

// NewSystem returns a Writer backed by the platform clipboard.
func NewSystem() *System {
	return &System{
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// WriteText writes text to the platform clipboard. Every failure wraps ErrWriteFailed.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if s.unsupported() {
		return ErrUnsupported
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Memory is an in-process Writer that keeps the last text written.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Text returns the last text written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

var (
	_ Writer = (*System)(nil)
	_ Writer = (*Memory)(nil)
	_ Writer = Func(nil)
)
