package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor stores an active transaction executor in the context.
// Repositories pick it up via GetExecutor, so the same repository method
// transparently joins a transaction opened by a tx manager.
func WithExecutor(ctx context.Context, executor TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor returns the transaction executor from the context, falling back
// to the provided default when no transaction is active.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}
