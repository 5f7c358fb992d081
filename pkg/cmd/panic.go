package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/school-admin/pkg/log"
)

// LogAppPanic expects the value returned by recover in the caller's deferred function.
func LogAppPanic(ctx context.Context, logger log.Logger, msg any) (panicCaught bool) {
	if msg == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
