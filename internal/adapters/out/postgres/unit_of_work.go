// Package postgres provides the GORM-based Unit of Work, the schema migrator
// and the glue between the parcel core and the repositories.
//
// A unit of work is created per command:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	tc, err := uow.TrackCodeRepository().LockByCode(ctx, code)
//	...
//	uow.Stage(notification.StatusChanged(tc.Owner(), tc.Code(), tc.Status()))
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//	for _, msg := range uow.Staged() {
//	    _ = sink.Enqueue(ctx, msg.UserID, msg.Text)
//	}
//
// Rollback after a successful Commit is a harmless no-op returning
// gorm.ErrInvalidTransaction.
//
// Savepoints let a batch skip one failing line without aborting the whole
// transaction. Notifications staged after a savepoint are dropped together
// with the rows when RollbackTo returns to it.
package postgres

import (
	"context"
	"fmt"
	"regexp"

	"cargo/internal/adapters/out/postgres/discountrepo"
	"cargo/internal/adapters/out/postgres/extraditionrepo"
	"cargo/internal/adapters/out/postgres/receiptrepo"
	"cargo/internal/adapters/out/postgres/trackcoderepo"
	"cargo/internal/adapters/out/postgres/userrepo"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// gorm splices savepoint names into the statement unquoted.
var savePointName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh instance isolated from concurrent ones.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory that hands out one unit of work
// per command.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Units of work are not reusable across
// goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:    f.db,
		marks: make(map[string]int),
	}
}

// GormUnitOfWork coordinates one database transaction and the notifications
// to deliver once it commits.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	staged []notification.Message
	marks  map[string]int
}

// Begin starts the transaction. Calling it again while a transaction is
// active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Staged messages stay available through
// Staged.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	clear(uow.marks)
	if err != nil {
		uow.staged = nil
	}
	return err
}

// Rollback discards the transaction and everything staged in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.staged = nil
	clear(uow.marks)
	return err
}

// SavePoint marks a point inside the transaction that RollbackTo can return
// to. Names are restricted to lower-case identifiers.
//
// Returns:
//   - gorm.ErrInvalidTransaction outside a transaction
//   - a ValueIsInvalid error for a malformed name
func (uow *GormUnitOfWork) SavePoint(ctx context.Context, name string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if !savePointName.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("savepoint", fmt.Errorf("%q is not a valid name", name))
	}

	if err := uow.tx.WithContext(ctx).SavePoint(name).Error; err != nil {
		return fmt.Errorf("savepoint %s: %w", name, err)
	}
	uow.marks[name] = len(uow.staged)
	return nil
}

// RollbackTo undoes the rows written after the savepoint and drops the
// notifications staged after it. The transaction stays usable.
// Returns an ObjectNotFound error for a savepoint never set.
func (uow *GormUnitOfWork) RollbackTo(ctx context.Context, name string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	mark, ok := uow.marks[name]
	if !ok {
		return errs.NewObjectNotFoundError("savepoint", name)
	}

	if err := uow.tx.WithContext(ctx).RollbackTo(name).Error; err != nil {
		return fmt.Errorf("rollback to %s: %w", name, err)
	}
	uow.staged = uow.staged[:mark]
	return nil
}

// Stage queues a notification for delivery after a successful commit.
func (uow *GormUnitOfWork) Stage(msg notification.Message) {
	uow.staged = append(uow.staged, msg)
}

// Staged returns a copy of the queued notifications.
func (uow *GormUnitOfWork) Staged() []notification.Message {
	staged := make([]notification.Message, len(uow.staged))
	copy(staged, uow.staged)
	return staged
}

// conn returns the transaction when one is active, the plain connection
// otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackCodeRepository returns a repository bound to the current transaction.
// Outside a transaction it uses the plain connection.
func (uow *GormUnitOfWork) TrackCodeRepository() ports.TrackCodeRepository {
	return trackcoderepo.NewGormTrackCodeRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReceiptRepository() ports.ReceiptRepository {
	return receiptrepo.NewGormReceiptRepository(uow.conn())
}

func (uow *GormUnitOfWork) DiscountRepository() ports.DiscountRepository {
	return discountrepo.NewGormDiscountRepository(uow.conn())
}

func (uow *GormUnitOfWork) ExtraditionRepository() ports.ExtraditionRepository {
	return extraditionrepo.NewGormExtraditionRepository(uow.conn())
}

// BarcodeSequence draws from the sequence on the current connection;
// nextval is never rolled back, so numbers stay unique either way.
func (uow *GormUnitOfWork) BarcodeSequence() ports.BarcodeSequence {
	return extraditionrepo.NewGormBarcodeSequence(uow.conn())
}

func (uow *GormUnitOfWork) UserDirectory() ports.UserDirectory {
	return userrepo.NewGormUserDirectory(uow.conn())
}
