package http

import (
	"net/http"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GenerateReceipt handles POST /api/v1/customers/{userId}/receipts.
func (s *Server) GenerateReceipt(ctx echo.Context, userId servers.UserId) error {
	var body servers.NewReceipt
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	owner, err := toUUID(userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewGenerateReceiptCommand(owner, deref(body.PickupPoint))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.GenerateReceipt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.GeneratedReceipt{
		ReceiptId:      result.ReceiptID,
		ItemCount:      result.ItemCount,
		TotalWeight:    result.TotalWeight.String(),
		TotalPrice:     result.TotalPrice,
		PaymentLink:    optional(result.PaymentLink),
		DiscountId:     result.DiscountID,
		UnweighedCodes: nonNil(result.UnweighedCodes),
	})
}

// ListReceipts handles GET /api/v1/customers/{userId}/receipts. It returns
// at most limit receipts, newest first.
func (s *Server) ListReceipts(ctx echo.Context, userId servers.UserId, params servers.ListReceiptsParams) error {
	owner, err := toUUID(userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	limit := deref(params.Limit)
	if limit <= 0 {
		limit = queries.DefaultReceiptPageSize
	}

	query, err := queries.NewListReceiptsQuery(owner, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Receipt, 0, limit)
	for view, err := range s.h.ListReceipts.Handle(ctx.Request().Context(), query) {
		if err != nil {
			return s.fail(ctx, err)
		}
		response = append(response, servers.Receipt{
			Id:               view.ID,
			CreatedAt:        view.CreatedAt,
			TotalWeight:      view.TotalWeight.String(),
			TotalPrice:       view.TotalPrice,
			ItemCount:        view.ItemCount,
			PickupPoint:      optional(view.PickupPoint),
			PaymentLink:      optional(view.PaymentLink),
			IsPaid:           view.IsPaid,
			PaidAt:           view.PaidAt,
			PaymentReference: optional(view.PaymentReference),
		})
		if len(response) == limit {
			break
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkReceiptPaid handles POST /api/v1/receipts/{receiptId}/pay.
func (s *Server) MarkReceiptPaid(ctx echo.Context, receiptId int64) error {
	var body servers.Payment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkReceiptPaidCommand(receiptId, deref(body.PaymentReference))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.MarkReceiptPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDiscount handles POST /api/v1/customers/{userId}/discounts.
func (s *Server) CreateDiscount(ctx echo.Context, userId servers.UserId) error {
	var body servers.NewDiscount
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	user, err := toUUID(userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	amount, err := decimal.NewFromString(body.AmountPerKg)
	if err != nil {
		return badRequest(ctx, "amountPerKg is not a number")
	}
	rate, err := kernel.NewRate(amount)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDiscountCommand(user, rate, deref(body.IsTemporary), deref(body.Comment))
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.CreateDiscount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id})
}

// DeactivateDiscount handles DELETE /api/v1/discounts/{discountId}.
func (s *Server) DeactivateDiscount(ctx echo.Context, discountId int64) error {
	cmd, err := commands.NewDeactivateDiscountCommand(discountId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeactivateDiscount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
