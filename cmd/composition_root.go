package cmd

import (
	"log/slog"

	httpin "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, sink ports.NotificationSink, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sink:       sink,
		logger:     logger,
	}
}

func (c *CompositionRoot) trackCodeUoWFactory() commands.TrackCodeUoWFactory {
	return FuncTrackCodeUoWFactory(func() commands.TrackCodeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) discountUoWFactory() commands.DiscountUoWFactory {
	return FuncDiscountUoWFactory(func() commands.DiscountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) extraditionUoWFactory() commands.ExtraditionUoWFactory {
	return FuncExtraditionUoWFactory(func() commands.ExtraditionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterTrackCodeCommandHandler() commands.RegisterTrackCodeCommandHandler {
	return commands.NewRegisterTrackCodeCommandHandler(c.trackCodeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTrackCodesCommandHandler() commands.UpdateTrackCodesCommandHandler {
	return commands.NewUpdateTrackCodesCommandHandler(c.trackCodeUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateGenerateReceiptCommandHandler() commands.GenerateReceiptCommandHandler {
	pricer := services.NewReceiptPricer(c.cfg.UnitPricePerKg, services.NewDiscountResolver())
	return commands.NewGenerateReceiptCommandHandler(
		c.billingUoWFactory(),
		pricer,
		commands.PaymentLinks(c.cfg.PaymentLinks),
		c.sink,
		c.logger,
	)
}

func (c *CompositionRoot) CreateMarkReceiptPaidCommandHandler() commands.MarkReceiptPaidCommandHandler {
	return commands.NewMarkReceiptPaidCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateCreateDiscountCommandHandler() commands.CreateDiscountCommandHandler {
	return commands.NewCreateDiscountCommandHandler(c.discountUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateDiscountCommandHandler() commands.DeactivateDiscountCommandHandler {
	return commands.NewDeactivateDiscountCommandHandler(c.discountUoWFactory())
}

func (c *CompositionRoot) CreateIssuePackageCommandHandler() commands.IssuePackageCommandHandler {
	return commands.NewIssuePackageCommandHandler(
		c.extraditionUoWFactory(),
		services.NewBarcodeIssuer(),
		c.cfg.BarcodeMaxAttempts,
		c.sink,
		c.logger,
	)
}

func (c *CompositionRoot) CreateIssueExtraditionCommandHandler() commands.IssueExtraditionCommandHandler {
	return commands.NewIssueExtraditionCommandHandler(
		c.extraditionUoWFactory(),
		services.NewBarcodeIssuer(),
		c.cfg.BarcodeMaxAttempts,
		c.sink,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetDeliverableCodesQueryHandler() queries.GetDeliverableCodesQueryHandler {
	return queries.NewGetDeliverableCodesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersWithReadyCodesQueryHandler() queries.GetCustomersWithReadyCodesQueryHandler {
	return queries.NewGetCustomersWithReadyCodesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReceiptsQueryHandler() queries.ListReceiptsQueryHandler {
	return queries.NewListReceiptsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillableOwnersQueryHandler() queries.GetBillableOwnersQueryHandler {
	return queries.NewGetBillableOwnersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case served over HTTP.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	registerTrackCode := c.CreateRegisterTrackCodeCommandHandler()
	updateTrackCodes := c.CreateUpdateTrackCodesCommandHandler()
	generateReceipt := c.CreateGenerateReceiptCommandHandler()
	markReceiptPaid := c.CreateMarkReceiptPaidCommandHandler()
	createDiscount := c.CreateCreateDiscountCommandHandler()
	deactivateDiscount := c.CreateDeactivateDiscountCommandHandler()
	issuePackage := c.CreateIssuePackageCommandHandler()
	issueExtradition := c.CreateIssueExtraditionCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		RegisterTrackCode:   &registerTrackCode,
		UpdateTrackCodes:    &updateTrackCodes,
		GenerateReceipt:     &generateReceipt,
		MarkReceiptPaid:     &markReceiptPaid,
		CreateDiscount:      &createDiscount,
		DeactivateDiscount:  &deactivateDiscount,
		IssuePackage:        &issuePackage,
		IssueExtradition:    &issueExtradition,
		GetDeliverableCodes: c.CreateGetDeliverableCodesQueryHandler(),
		GetReadyCustomers:   c.CreateGetCustomersWithReadyCodesQueryHandler(),
		ListReceipts:        c.CreateListReceiptsQueryHandler(),
		ListPackages:        c.CreateListPackagesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	generateReceipt := c.CreateGenerateReceiptCommandHandler()
	receiptJob := jobs.NewDailyReceiptJob(
		c.CreateGetBillableOwnersQueryHandler(),
		&generateReceipt,
		c.cfg.ReceiptCron,
		c.logger,
	)
	return jobs.NewJobManager(receiptJob)
}

type FuncTrackCodeUoWFactory func() commands.TrackCodeUoW

func (f FuncTrackCodeUoWFactory) Create() commands.TrackCodeUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncDiscountUoWFactory func() commands.DiscountUoW

func (f FuncDiscountUoWFactory) Create() commands.DiscountUoW {
	return f()
}

type FuncExtraditionUoWFactory func() commands.ExtraditionUoW

func (f FuncExtraditionUoWFactory) Create() commands.ExtraditionUoW {
	return f()
}
