package db

import (
	"context"
	"errors"
)

// StubTxManager runs the callback without a real transaction. Intended for
// service tests.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (tm *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.RunInTxFunc == nil {
		if fn == nil {
			return errors.New("RunInTx called with nil fn")
		}
		return fn(ctx)
	}
	return tm.RunInTxFunc(ctx, fn)
}
