package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/receipt"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTrackCodeRepository struct{ mock.Mock }

func (m *MockTrackCodeRepository) Add(ctx context.Context, tc *trackcode.TrackCode) error {
	args := m.Called(ctx, tc)
	return args.Error(0)
}

func (m *MockTrackCodeRepository) Update(ctx context.Context, tc *trackcode.TrackCode) error {
	args := m.Called(ctx, tc)
	return args.Error(0)
}

func (m *MockTrackCodeRepository) UpdateStatuses(ctx context.Context, codes []*trackcode.TrackCode) error {
	args := m.Called(ctx, codes)
	return args.Error(0)
}

func (m *MockTrackCodeRepository) Get(ctx context.Context, id int64) (*trackcode.TrackCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trackcode.TrackCode), args.Error(1)
}

func (m *MockTrackCodeRepository) LockByCode(ctx context.Context, code string) (*trackcode.TrackCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trackcode.TrackCode), args.Error(1)
}

func (m *MockTrackCodeRepository) LockBillable(
	ctx context.Context,
	ownerID kernel.UUID,
	asOf time.Time,
) ([]*trackcode.TrackCode, error) {
	args := m.Called(ctx, ownerID, asOf)
	return args.Get(0).([]*trackcode.TrackCode), args.Error(1)
}

func (m *MockTrackCodeRepository) LockReady(ctx context.Context, ownerID kernel.UUID) ([]*trackcode.TrackCode, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*trackcode.TrackCode), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Get(ctx context.Context, id int64) (*receipt.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetForUpdate(ctx context.Context, id int64) (*receipt.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

type MockDiscountRepository struct{ mock.Mock }

func (m *MockDiscountRepository) Add(ctx context.Context, d *discount.Discount) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDiscountRepository) Get(ctx context.Context, id int64) (*discount.Discount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Discount), args.Error(1)
}

func (m *MockDiscountRepository) LockActive(ctx context.Context, userID kernel.UUID) ([]*discount.Discount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*discount.Discount), args.Error(1)
}

type MockExtraditionRepository struct{ mock.Mock }

func (m *MockExtraditionRepository) AddExtradition(ctx context.Context, e *extradition.Extradition) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExtraditionRepository) AddPackage(ctx context.Context, p *extradition.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockExtraditionRepository) GetExtradition(ctx context.Context, id int64) (*extradition.Extradition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extradition.Extradition), args.Error(1)
}

func (m *MockExtraditionRepository) GetPackageByBarcode(ctx context.Context, barcode extradition.Barcode) (*extradition.Package, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extradition.Package), args.Error(1)
}

type MockBarcodeSequence struct{ mock.Mock }

func (m *MockBarcodeSequence) NextPackageNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) Exists(ctx context.Context, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Enqueue(ctx context.Context, userID kernel.UUID, message string) error {
	args := m.Called(ctx, userID, message)
	return args.Error(0)
}

// MockUnitOfWork mocks the transaction calls. Repositories are plain fields
// and staged messages are recorded for real, so tests only set up what they
// assert on.
type MockUnitOfWork struct {
	mock.Mock

	trackCodes   *MockTrackCodeRepository
	receipts     *MockReceiptRepository
	discounts    *MockDiscountRepository
	extraditions *MockExtraditionRepository
	sequence     *MockBarcodeSequence
	users        *MockUserDirectory

	staged []notification.Message
}

func newMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		trackCodes:   new(MockTrackCodeRepository),
		receipts:     new(MockReceiptRepository),
		discounts:    new(MockDiscountRepository),
		extraditions: new(MockExtraditionRepository),
		sequence:     new(MockBarcodeSequence),
		users:        new(MockUserDirectory),
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) SavePoint(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockUnitOfWork) RollbackTo(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockUnitOfWork) Stage(msg notification.Message) {
	m.staged = append(m.staged, msg)
}

func (m *MockUnitOfWork) Staged() []notification.Message {
	return m.staged
}

func (m *MockUnitOfWork) TrackCodeRepository() ports.TrackCodeRepository {
	return m.trackCodes
}

func (m *MockUnitOfWork) ReceiptRepository() ports.ReceiptRepository {
	return m.receipts
}

func (m *MockUnitOfWork) DiscountRepository() ports.DiscountRepository {
	return m.discounts
}

func (m *MockUnitOfWork) ExtraditionRepository() ports.ExtraditionRepository {
	return m.extraditions
}

func (m *MockUnitOfWork) BarcodeSequence() ports.BarcodeSequence {
	return m.sequence
}

func (m *MockUnitOfWork) UserDirectory() ports.UserDirectory {
	return m.users
}

func (m *MockUnitOfWork) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.trackCodes.AssertExpectations(t)
	m.receipts.AssertExpectations(t)
	m.discounts.AssertExpectations(t)
	m.extraditions.AssertExpectations(t)
	m.sequence.AssertExpectations(t)
	m.users.AssertExpectations(t)
}

type trackCodeUoWFactory struct{ uow *MockUnitOfWork }

func (f trackCodeUoWFactory) Create() commands.TrackCodeUoW { return f.uow }

type billingUoWFactory struct{ uow *MockUnitOfWork }

func (f billingUoWFactory) Create() commands.BillingUoW { return f.uow }

type discountUoWFactory struct{ uow *MockUnitOfWork }

func (f discountUoWFactory) Create() commands.DiscountUoW { return f.uow }

type extraditionUoWFactory struct{ uow *MockUnitOfWork }

func (f extraditionUoWFactory) Create() commands.ExtraditionUoW { return f.uow }

var discardLogger = slog.New(slog.DiscardHandler)

var testNow = time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

func restoreCode(id int64, code string, owner kernel.UUID, status trackcode.Status, weight string) *trackcode.TrackCode {
	var w *kernel.Weight
	if weight != "" {
		parsed, err := kernel.WeightFromString(weight)
		if err != nil {
			panic(err)
		}
		w = &parsed
	}
	tc, err := trackcode.RestoreTrackCode(id, code, status, owner, "", w, testNow)
	if err != nil {
		panic(err)
	}
	return tc
}
