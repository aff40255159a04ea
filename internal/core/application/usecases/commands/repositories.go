// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SavePointer isolates a step of a transaction so it can fail alone.
	SavePointer interface {
		SavePoint(ctx context.Context, name string) error
		RollbackTo(ctx context.Context, name string) error
	}

	// Outbox holds notifications until the transaction committed.
	Outbox interface {
		Stage(msg notification.Message)
		Staged() []notification.Message
	}

	TrackCodeRepoFactory interface {
		TrackCodeRepository() ports.TrackCodeRepository
	}

	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	DiscountRepoFactory interface {
		DiscountRepository() ports.DiscountRepository
	}

	ExtraditionRepoFactory interface {
		ExtraditionRepository() ports.ExtraditionRepository
		BarcodeSequence() ports.BarcodeSequence
	}

	UserDirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	// TrackCodeUoW serves registration and operator updates of track codes.
	TrackCodeUoW interface {
		TxManager
		SavePointer
		Outbox
		TrackCodeRepoFactory
		UserDirectoryFactory
	}

	TrackCodeUoWFactory interface {
		Create() TrackCodeUoW
	}

	// BillingUoW serves receipt generation and payment.
	BillingUoW interface {
		TxManager
		Outbox
		TrackCodeRepoFactory
		ReceiptRepoFactory
		DiscountRepoFactory
		UserDirectoryFactory
	}

	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// DiscountUoW serves discount management.
	DiscountUoW interface {
		TxManager
		DiscountRepoFactory
		UserDirectoryFactory
	}

	DiscountUoWFactory interface {
		Create() DiscountUoW
	}

	// ExtraditionUoW serves both handover modes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   codes, err := uow.TrackCodeRepository().LockReady(ctx, customerID)
	//   // ... claim codes, issue package, stage notification
	//
	//   err = uow.Commit(ctx)
	//   dispatch(ctx, sink, logger, uow.Staged())
	ExtraditionUoW interface {
		TxManager
		SavePointer
		Outbox
		TrackCodeRepoFactory
		ReceiptRepoFactory
		ExtraditionRepoFactory
		UserDirectoryFactory
	}

	ExtraditionUoWFactory interface {
		Create() ExtraditionUoW
	}
)
