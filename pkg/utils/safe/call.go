// Package safe runs callbacks so that a panic becomes an error instead of
// ending a long running command.
package safe

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ErrPanic marks an error recovered from a panic
var ErrPanic = goerr.New("panic recovered")

// Call runs handler and converts a panic into an error wrapping ErrPanic
func Call(ctx context.Context, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("Panic in handler",
				"recover", r,
				"stack", string(stack),
			)
			err = goerr.Wrap(ErrPanic, "handler panicked", goerr.V("recover", r))
		}
	}()

	return handler(ctx)
}
