package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/school-admin/pkg/worker"
)

func TestGroup_Wait(t *testing.T) {
	t.Run("nil_when_all_jobs_succeed", func(t *testing.T) {
		var completed atomic.Int32
		_, group := worker.NewGroup(context.Background())
		for range 5 {
			group.Do(func() error {
				completed.Add(1)
				return nil
			})
		}

		assert.NoError(t, group.Wait())
		assert.Equal(t, int32(5), completed.Load())
	})

	t.Run("first_error_cancels_other_jobs", func(t *testing.T) {
		errJob := errors.New("job failed")
		ctx, group := worker.NewGroup(context.Background())
		group.Do(func() error {
			<-ctx.Done()
			return ctx.Err()
		})
		group.Do(func() error {
			return errJob
		})

		assert.ErrorIs(t, group.Wait(), errJob)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}
