package memory

import "context"

// TxManager satisfies ports.TxManager without transactional rollback;
// the store's per-call locking is enough for test scenarios.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
