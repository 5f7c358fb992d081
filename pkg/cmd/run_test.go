package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/school-admin/pkg/cmd"
	"github.com/klwxsrx/school-admin/pkg/log"
)

func TestRun(t *testing.T) {
	logger := log.New(log.LevelDisabled)
	blockingJob := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	t.Run("completed_job_stops_others", func(t *testing.T) {
		err := cmd.Run(context.Background(), logger,
			blockingJob,
			func(context.Context) error { return nil },
		)
		assert.NoError(t, err)
	})

	t.Run("failed_job_is_reported", func(t *testing.T) {
		errListener := errors.New("listen failed")
		err := cmd.Run(context.Background(), logger,
			blockingJob,
			func(context.Context) error { return errListener },
		)
		assert.ErrorIs(t, err, errListener)
	})

	t.Run("cancelled_parent_completes", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, cmd.Run(ctx, logger, blockingJob, cmd.TermSignalAwaiter))
	})
}

func TestLogAppPanic(t *testing.T) {
	var caught bool
	func() {
		defer func() {
			caught = cmd.LogAppPanic(context.Background(), log.New(log.LevelDisabled), recover())
		}()
		panic("boom")
	}()

	assert.True(t, caught)
	assert.False(t, cmd.LogAppPanic(context.Background(), log.New(log.LevelDisabled), nil))
}
