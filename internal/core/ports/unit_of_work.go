package ports

import (
	"context"

	"cargo/internal/core/domain/model/notification"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops staged messages.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SavePoint marks a point inside the transaction that RollbackTo can
	// return to without aborting the whole transaction.
	SavePoint(ctx context.Context, name string) error

	// RollbackTo undoes everything after the named savepoint, including
	// messages staged after it.
	RollbackTo(ctx context.Context, name string) error

	// Stage records a notification to deliver once the transaction commits.
	Stage(msg notification.Message)

	// Staged returns the messages that survived the transaction.
	Staged() []notification.Message

	TrackCodeRepository() TrackCodeRepository
	ReceiptRepository() ReceiptRepository
	DiscountRepository() DiscountRepository
	ExtraditionRepository() ExtraditionRepository
	BarcodeSequence() BarcodeSequence
	UserDirectory() UserDirectory
}
