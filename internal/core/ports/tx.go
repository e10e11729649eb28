package ports

import "context"

// TxManager runs a function inside a single transactional boundary. The blog
// write and the owner's posts update must commit or abort together so the
// bidirectional User↔Blog reference never ends up half-applied.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
