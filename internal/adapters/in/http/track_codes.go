package http

import (
	"net/http"
	"time"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RegisterTrackCode handles POST /api/v1/track-codes.
func (s *Server) RegisterTrackCode(ctx echo.Context) error {
	var body servers.NewTrackCode
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	owner, err := toUUID(body.UserId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterTrackCodeCommand(owner, body.Code, deref(body.Description))
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.RegisterTrackCode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id})
}

// UpdateTrackCodes handles POST /api/v1/track-codes/status.
func (s *Server) UpdateTrackCodes(ctx echo.Context) error {
	var body servers.TrackCodeBatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status := trackcode.Unknown
	if body.Status != nil {
		parsed, err := trackcode.ParseStatus(string(*body.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = parsed
	}

	cmd, err := commands.NewUpdateTrackCodesCommand(body.Codes, status, deref(body.Correction), deref(body.Notify))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.UpdateTrackCodes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BatchResult{
		Updated:  result.Updated,
		Failed:   result.Failed,
		Warnings: nonNil(result.Warnings),
	})
}

// GetDeliverableCodes handles GET /api/v1/customers/{userId}/deliverable.
func (s *Server) GetDeliverableCodes(ctx echo.Context, userId servers.UserId) error {
	owner, err := toUUID(userId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDeliverableCodesQuery(owner)
	if err != nil {
		return s.fail(ctx, err)
	}

	days, err := s.h.GetDeliverableCodes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DeliverableDay, 0, len(days))
	for _, day := range days {
		date, err := dateOf(day.Date)
		if err != nil {
			return s.fail(ctx, err)
		}

		codes := make([]servers.DeliverableCode, len(day.Codes))
		for i, c := range day.Codes {
			codes[i] = servers.DeliverableCode{
				Id:          c.ID,
				Code:        c.Code,
				Status:      c.Status.String(),
				Description: optional(c.Description),
				Billed:      c.Billed,
			}
			if c.Weight != nil {
				w := c.Weight.String()
				codes[i].Weight = &w
			}
		}

		response = append(response, servers.DeliverableDay{
			Date:        date,
			TotalWeight: day.TotalWeight.String(),
			Codes:       codes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomersWithReadyCodes handles GET /api/v1/customers/ready.
func (s *Server) GetCustomersWithReadyCodes(ctx echo.Context) error {
	customers, err := s.h.GetReadyCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersWithReadyCodesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ReadyCustomer, len(customers))
	for i, c := range customers {
		response[i] = servers.ReadyCustomer{
			UserId:     fromUUID(c.UserID),
			Username:   c.Username,
			ReadyCount: c.ReadyCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func dateOf(day string) (openapi_types.Date, error) {
	t, err := time.Parse(openapi_types.DateFormat, day)
	if err != nil {
		return openapi_types.Date{}, err
	}
	return openapi_types.Date{Time: t}, nil
}
