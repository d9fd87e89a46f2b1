package session

import "context"

// Lease учетные данные вместе с поколением сессии, которому они выданы.
// Запрос, начатый под одной сессией, не должен уйти с учетными данными другой.
type Lease struct {
	Epoch      uint64
	Credential string
}

type leaseKey struct{}

// WithLease закрепляет сессию за контекстом операции
func WithLease(ctx context.Context, l Lease) context.Context {
	return context.WithValue(ctx, leaseKey{}, l)
}

// LeaseFrom сессия, закрепленная за контекстом
func LeaseFrom(ctx context.Context) (Lease, bool) {
	l, ok := ctx.Value(leaseKey{}).(Lease)
	return l, ok
}
