package http

import (
	"context"
	"iter"
	"log/slog"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case ports of the HTTP adapter. The command and query handlers
// satisfy them through their Handle methods.
type (
	TrackCodeRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterTrackCodeCommand) (int64, error)
	}

	TrackCodeUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateTrackCodesCommand) (commands.UpdateTrackCodesResult, error)
	}

	ReceiptGenerator interface {
		Handle(ctx context.Context, cmd commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error)
	}

	ReceiptPayer interface {
		Handle(ctx context.Context, cmd commands.MarkReceiptPaidCommand) error
	}

	DiscountCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDiscountCommand) (int64, error)
	}

	DiscountDeactivator interface {
		Handle(ctx context.Context, cmd commands.DeactivateDiscountCommand) error
	}

	PackageIssuer interface {
		Handle(ctx context.Context, cmd commands.IssuePackageCommand) (commands.IssuePackageResult, error)
	}

	ExtraditionIssuer interface {
		Handle(ctx context.Context, cmd commands.IssueExtraditionCommand) (commands.IssueExtraditionResult, error)
	}

	DeliverableCodesReader interface {
		Handle(ctx context.Context, query queries.GetDeliverableCodesQuery) ([]queries.DeliverableDay, error)
	}

	ReadyCustomersReader interface {
		Handle(ctx context.Context, query queries.GetCustomersWithReadyCodesQuery) ([]queries.ReadyCustomer, error)
	}

	ReceiptLister interface {
		Handle(ctx context.Context, query queries.ListReceiptsQuery) iter.Seq2[queries.ReceiptView, error]
	}

	PackageLister interface {
		Handle(ctx context.Context, query queries.ListPackagesQuery) ([]queries.PackageView, error)
	}
)

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	RegisterTrackCode   TrackCodeRegistrar
	UpdateTrackCodes    TrackCodeUpdater
	GenerateReceipt     ReceiptGenerator
	MarkReceiptPaid     ReceiptPayer
	CreateDiscount      DiscountCreator
	DeactivateDiscount  DiscountDeactivator
	IssuePackage        PackageIssuer
	IssueExtradition    ExtraditionIssuer
	GetDeliverableCodes DeliverableCodesReader
	GetReadyCustomers   ReadyCustomersReader
	ListReceipts        ReceiptLister
	ListPackages        PackageLister
}

// Server implements servers.ServerInterface on top of the application
// use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

func toUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func fromUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
