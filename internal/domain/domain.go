package domain

import "context"

// Transactor runs a function inside a single storage transaction. Repositories
// participating in the transaction pick it up from the context, so a service
// can compose several repository calls into one atomic unit of work.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
