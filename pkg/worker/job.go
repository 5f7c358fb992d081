package worker

import "context"

type (
	ErrorJob   func() error
	ContextJob func(context.Context) error
)
