package fileops

import (
	"context"
)

type OperationType string

const (
	DeleteOperation OperationType = "delete"
	RenameOperation OperationType = "rename"
	OpenOperation   OperationType = "open"
)

// Operation runs a single mutation off the caller's goroutine. The result
// arrives on Done exactly once.
type Operation struct {
	Type   OperationType
	cancel context.CancelFunc
	done   chan error
}

func NewOperation(t OperationType, f func(ctx context.Context) error) *Operation {
	o := &Operation{
		Type: t,
		done: make(chan error, 1),
	}
	var ctx context.Context
	ctx, o.cancel = context.WithCancel(context.Background())
	go func() {
		o.done <- f(ctx)
	}()
	return o
}

// Done delivers the operation result once the mutation finishes.
func (o *Operation) Done() <-chan error {
	return o.done
}

// Cancel asks the mutation to stop. The result still arrives on Done.
func (o *Operation) Cancel() {
	o.cancel()
}
