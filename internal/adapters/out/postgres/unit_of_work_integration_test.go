package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "cargo/internal/adapters/out/postgres"
	"cargo/internal/adapters/out/postgres/notificationrepo"
	"cargo/internal/adapters/out/postgres/pgtest"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL, including concurrent handlers sharing one database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
	owner     kernel.UUID
	now       time.Time
}

type billingFactory struct{ f *postgres_adapter.GormUnitOfWorkFactory }

func (b billingFactory) Create() commands.BillingUoW { return b.f.Create() }

type extraditionFactory struct{ f *postgres_adapter.GormUnitOfWorkFactory }

func (e extraditionFactory) Create() commands.ExtraditionUoW { return e.f.Create() }

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	owner, err := pgtest.AddUser(suite.db, "alice")
	suite.Require().NoError(err)
	suite.owner = owner
	suite.now = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) addCode(owner kernel.UUID, code string, status trackcode.Status) *trackcode.TrackCode {
	tc, err := trackcode.NewTrackCode(code, owner, "", suite.now)
	suite.Require().NoError(err)
	if status != trackcode.UserAdded {
		suite.Require().NoError(tc.Advance(status, suite.now))
	}
	w, err := kernel.WeightFromString("1.5")
	suite.Require().NoError(err)
	suite.Require().NoError(tc.Weigh(w, suite.now))
	suite.Require().NoError(suite.factory.Create().TrackCodeRepository().Add(context.Background(), tc))
	return tc
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.db.Table(table).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsIdempotent() {
	suite.Require().NoError(postgres_adapter.Migrate(context.Background(), suite.db))

	var constraints int64
	suite.Require().NoError(suite.db.Raw(
		"SELECT count(*) FROM pg_constraint WHERE contype = 'f' AND conname LIKE 'fk\\_%'",
	).Scan(&constraints).Error)
	suite.Equal(int64(len(postgres_adapter.CascadePolicies)), constraints)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")
	suite.Require().Error(uow.SavePoint(ctx, "line_1"), "savepoint without begin")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_BeginIsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsRowsAndMessages() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	tc, err := trackcode.NewTrackCode("YT1", suite.owner, "", suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TrackCodeRepository().Add(ctx, tc))
	uow.Stage(notification.StatusChanged(suite.owner, "YT1", trackcode.UserAdded))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.Staged())
	_, err = suite.factory.Create().TrackCodeRepository().Get(ctx, tc.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitKeepsMessages() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	tc, err := trackcode.NewTrackCode("YT1", suite.owner, "", suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TrackCodeRepository().Add(ctx, tc))
	uow.Stage(notification.StatusChanged(suite.owner, "YT1", trackcode.UserAdded))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Len(uow.Staged(), 1)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Len(uow.Staged(), 1, "rollback after commit keeps messages")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SavePointIsolatesFailedLine() {
	ctx := context.Background()
	suite.addCode(suite.owner, "TAKEN", trackcode.UserAdded)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.TrackCodeRepository()

	for i, code := range []string{"A", "TAKEN", "B"} {
		name := fmt.Sprintf("line_%d", i)
		suite.Require().NoError(uow.SavePoint(ctx, name))

		tc, err := trackcode.NewTrackCode(code, suite.owner, "", suite.now)
		suite.Require().NoError(err)
		uow.Stage(notification.StatusChanged(suite.owner, code, trackcode.UserAdded))

		if err := uow.TrackCodeRepository().Add(ctx, tc); err != nil {
			suite.Require().ErrorIs(err, ports.ErrTrackCodeExists)
			suite.Require().NoError(uow.RollbackTo(ctx, name))
		}
	}
	suite.Require().NoError(uow.Commit(ctx))

	staged := uow.Staged()
	suite.Require().Len(staged, 2)
	suite.Contains(staged[0].Text, "Track code A:")
	suite.Contains(staged[1].Text, "Track code B:")

	_, err := repo.LockByCode(ctx, "B")
	suite.Require().NoError(err)
	suite.Equal(int64(3), suite.count("track_codes"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackToUnknownSavePoint() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	suite.Require().ErrorIs(uow.RollbackTo(ctx, "nowhere"), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(uow.SavePoint(ctx, "bad; DROP TABLE users"), errs.ErrValueIsInvalid)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	exists, err := uow.UserDirectory().Exists(ctx, suite.owner)
	suite.Require().NoError(err)
	suite.True(exists)

	n, err := uow.BarcodeSequence().NextPackageNumber(ctx)
	suite.Require().NoError(err)
	suite.Positive(n)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentReceiptGeneration_BillsEachCodeOnce() {
	ctx := context.Background()
	for i := range 3 {
		suite.addCode(suite.owner, fmt.Sprintf("D%d", i), trackcode.Delivered)
	}

	unit, err := kernel.RateFromInt(1000)
	suite.Require().NoError(err)
	handler := commands.NewGenerateReceiptCommandHandler(
		billingFactory{suite.factory},
		services.NewReceiptPricer(unit, services.NewDiscountResolver()),
		commands.PaymentLinks{},
		notificationrepo.NewGormNotificationSink(suite.db),
		slog.New(slog.DiscardHandler),
	)

	const workers = 4
	results := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewGenerateReceiptCommand(suite.owner, "")
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.True(
			errors.Is(err, commands.ErrNoEligibleParcels) || errors.Is(err, commands.ErrTrackCodeAlreadyBilled),
			"unexpected error: %v", err,
		)
	}
	suite.Equal(1, succeeded)
	suite.Equal(int64(1), suite.count("receipts"))
	suite.Equal(int64(3), suite.count("receipt_items"))
	suite.Equal(int64(1), suite.count("notifications"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentBulkIssuance_UniqueBarcodes() {
	ctx := context.Background()
	const customers = 5

	owners := make([]kernel.UUID, 0, customers)
	for i := range customers {
		owner, err := pgtest.AddUser(suite.db, fmt.Sprintf("customer-%d", i))
		suite.Require().NoError(err)
		owners = append(owners, owner)
		suite.addCode(owner, fmt.Sprintf("R%d-1", i), trackcode.Ready)
		suite.addCode(owner, fmt.Sprintf("R%d-2", i), trackcode.Ready)
	}

	handler := commands.NewIssuePackageCommandHandler(
		extraditionFactory{suite.factory},
		services.NewBarcodeIssuer(),
		commands.DefaultBarcodeAttempts,
		notificationrepo.NewGormNotificationSink(suite.db),
		slog.New(slog.DiscardHandler),
	)

	// every customer is issued twice at once; the loser finds nothing left
	results := make([]error, 2*customers)
	barcodes := make([]string, 2*customers)
	var wg sync.WaitGroup
	for i := range 2 * customers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewIssuePackageCommand(owners[i%customers], "Almaty-1", "", nil)
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			res, err := handler.Handle(ctx, cmd)
			results[i] = err
			barcodes[i] = res.Barcode
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{})
	for i, err := range results {
		if err != nil {
			suite.Require().ErrorIs(err, commands.ErrNothingToIssue)
			continue
		}
		_, dup := seen[barcodes[i]]
		suite.False(dup, "barcode %s issued twice", barcodes[i])
		seen[barcodes[i]] = struct{}{}
	}
	suite.Len(seen, customers)
	suite.Equal(int64(customers), suite.count("extradition_packages"))
	suite.Equal(int64(2*customers), suite.count("extradition_package_track_codes"))

	var claimed int64
	suite.Require().NoError(suite.db.Table("track_codes").Where("status = ?", trackcode.Claimed.String()).Count(&claimed).Error)
	suite.Equal(int64(2*customers), claimed)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
