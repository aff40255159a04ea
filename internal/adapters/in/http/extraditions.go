package http

import (
	"net/http"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const defaultPackagesLimit = 100

// IssuePackage handles POST /api/v1/packages, the bulk handover of every
// ready parcel of a customer.
func (s *Server) IssuePackage(ctx echo.Context) error {
	var body servers.NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := toUUID(body.UserId)
	if err != nil {
		return s.fail(ctx, err)
	}
	operator, err := toOptionalUUID(body.OperatorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewIssuePackageCommand(customer, body.PickupPoint, deref(body.Comment), operator)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.IssuePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.IssuedPackage{
		PackageId: result.PackageID,
		Barcode:   result.Barcode,
		Count:     result.Count,
	})
}

// ListPackages handles GET /api/v1/packages.
func (s *Server) ListPackages(ctx echo.Context, params servers.ListPackagesParams) error {
	user, err := toOptionalUUID(params.UserId)
	if err != nil {
		return s.fail(ctx, err)
	}

	limit := deref(params.Limit)
	if params.Limit == nil {
		limit = defaultPackagesLimit
	}

	query, err := queries.NewListPackagesQuery(user, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	packages, err := s.h.ListPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Package, len(packages))
	for i, p := range packages {
		response[i] = servers.Package{
			Id:            p.ID,
			Barcode:       p.Barcode,
			UserId:        fromUUID(p.UserID),
			Username:      p.Username,
			ExtraditionId: p.ExtraditionID,
			IsIssued:      p.IsIssued,
			Comment:       optional(p.Comment),
			CreatedAt:     p.CreatedAt,
			Codes:         nonNil(p.Codes),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// IssueExtradition handles POST /api/v1/extraditions, the per-code handover.
// Lines that cannot be handed over are reported in warnings.
func (s *Server) IssueExtradition(ctx echo.Context) error {
	var body servers.NewExtradition
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipient, err := toUUID(body.UserId)
	if err != nil {
		return s.fail(ctx, err)
	}
	operator, err := toOptionalUUID(body.OperatorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewIssueExtraditionCommand(
		recipient,
		operator,
		body.PickupPoint,
		deref(body.Comment),
		body.ReceiptId,
		body.Codes,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.IssueExtradition.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	issued := make([]servers.HandedOverCode, len(result.Issued))
	for i, p := range result.Issued {
		issued[i] = servers.HandedOverCode{Code: p.Code, Barcode: p.Barcode}
	}

	return ctx.JSON(http.StatusCreated, servers.ExtraditionResult{
		ExtraditionId: result.ExtraditionID,
		Issued:        issued,
		Succeeded:     result.Succeeded,
		Failed:        result.Failed,
		Warnings:      nonNil(result.Warnings),
	})
}
