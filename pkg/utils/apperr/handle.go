// Package apperr reports errors that end an operation without ending the
// process, such as a failed re-render while watching.
package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs err with the logger carried by ctx
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}
