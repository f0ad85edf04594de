package repositories

import "context"

// TxFn is a function that runs within a transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs functions inside a database transaction. The
// category delete cascade is the main consumer: questions, access requests
// and the category row go in one atomic unit.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
