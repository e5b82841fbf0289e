package mockmcp

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a Tool with cross-cutting behavior (logging, recovery, timeout,
// stateful dispatch).
type Middleware func(Tool) Tool

// WithLogging returns a middleware that logs start, end, duration, and errors.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Tool) Tool {
		return &loggingTool{toolBase: toolBase{next: next}, logger: logger}
	}
}

// WithRecovery returns a middleware that recovers panics and returns SystemError.
func WithRecovery() Middleware {
	return func(next Tool) Tool {
		return &recoveryTool{toolBase{next: next}}
	}
}

// WithTimeoutMiddleware returns a middleware that enforces a per-tool timeout (overrides
// the registry default for this tool). Named with "Middleware" suffix to avoid collision
// with the ToolOption WithTimeout. When both the registry default and this middleware
// apply, the effective timeout is the minimum of the two (inner context cancels first).
func WithTimeoutMiddleware(d time.Duration) Middleware {
	return func(next Tool) Tool {
		return &timeoutTool{toolBase: toolBase{next: next}, timeout: d}
	}
}

// ToolBase delegates Tool and ToolMetadata to the wrapped Tool. Embed it in middleware
// implementations that only need to intercept Execute.
type ToolBase struct{ next Tool }

// NewToolBase returns a ToolBase delegating to next.
func NewToolBase(next Tool) ToolBase { return ToolBase{next: next} }

// Next returns the wrapped Tool.
func (b *ToolBase) Next() Tool { return b.next }

func (b *ToolBase) Name() string               { return b.next.Name() }
func (b *ToolBase) Description() string        { return b.next.Description() }
func (b *ToolBase) Parameters() map[string]any { return b.next.Parameters() }

func (b *ToolBase) Timeout() time.Duration {
	if tm, ok := b.next.(ToolMetadata); ok {
		return tm.Timeout()
	}
	return 0
}

func (b *ToolBase) Tags() []string {
	if tm, ok := b.next.(ToolMetadata); ok {
		return tm.Tags()
	}
	return nil
}

func (b *ToolBase) Version() string {
	if tm, ok := b.next.(ToolMetadata); ok {
		return tm.Version()
	}
	return ""
}

func (b *ToolBase) IsStateful() bool {
	if tm, ok := b.next.(ToolMetadata); ok {
		return tm.IsStateful()
	}
	return false
}

// toolBase is the unexported alias used by the built-in middlewares.
type toolBase = ToolBase

type loggingTool struct {
	toolBase
	logger *slog.Logger
}

func (m *loggingTool) Execute(ctx context.Context, args []byte) ([]byte, error) {
	m.logger.Info("tool start", "tool", m.Next().Name())
	start := time.Now()
	res, err := m.Next().Execute(ctx, args)
	dur := time.Since(start)
	if err != nil {
		m.logger.Error("tool error", "tool", m.Next().Name(), "duration", dur, "error", err)
		return nil, err
	}
	m.logger.Info("tool end", "tool", m.Next().Name(), "duration", dur)
	return res, nil
}

type recoveryTool struct{ toolBase }

func (r *recoveryTool) Execute(ctx context.Context, args []byte) (res []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = &SystemError{Err: &panicError{p: p}}
		}
	}()
	return r.Next().Execute(ctx, args)
}

type timeoutTool struct {
	toolBase
	timeout time.Duration
}

func (t *timeoutTool) Timeout() time.Duration {
	if t.timeout > 0 {
		return t.timeout
	}
	return t.toolBase.Timeout()
}

func (t *timeoutTool) Execute(ctx context.Context, args []byte) ([]byte, error) {
	if t.timeout <= 0 {
		return t.Next().Execute(ctx, args)
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Next().Execute(ctx, args)
}

// Use stores the given middlewares and reapplies them from scratch to all registered tools
// (onion order: first middleware is outermost). Tools registered after Use will also get
// these middlewares applied. Calling Use multiple times replaces the middleware chain and
// rewraps from raw tools, avoiding double-wrapping.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, raw := range r.rawTools {
		t := raw
		for i := len(middlewares) - 1; i >= 0; i-- {
			t = middlewares[i](t)
		}
		r.tools[name] = t
	}
}
