package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/receipt"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/ports"
	"cargo/internal/generated/servers"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerFunc func(context.Context, commands.RegisterTrackCodeCommand) (int64, error)

func (f registerFunc) Handle(ctx context.Context, cmd commands.RegisterTrackCodeCommand) (int64, error) {
	return f(ctx, cmd)
}

type updateFunc func(context.Context, commands.UpdateTrackCodesCommand) (commands.UpdateTrackCodesResult, error)

func (f updateFunc) Handle(ctx context.Context, cmd commands.UpdateTrackCodesCommand) (commands.UpdateTrackCodesResult, error) {
	return f(ctx, cmd)
}

type generateFunc func(context.Context, commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error)

func (f generateFunc) Handle(ctx context.Context, cmd commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error) {
	return f(ctx, cmd)
}

type payFunc func(context.Context, commands.MarkReceiptPaidCommand) error

func (f payFunc) Handle(ctx context.Context, cmd commands.MarkReceiptPaidCommand) error {
	return f(ctx, cmd)
}

type createDiscountFunc func(context.Context, commands.CreateDiscountCommand) (int64, error)

func (f createDiscountFunc) Handle(ctx context.Context, cmd commands.CreateDiscountCommand) (int64, error) {
	return f(ctx, cmd)
}

type deactivateFunc func(context.Context, commands.DeactivateDiscountCommand) error

func (f deactivateFunc) Handle(ctx context.Context, cmd commands.DeactivateDiscountCommand) error {
	return f(ctx, cmd)
}

type issuePackageFunc func(context.Context, commands.IssuePackageCommand) (commands.IssuePackageResult, error)

func (f issuePackageFunc) Handle(ctx context.Context, cmd commands.IssuePackageCommand) (commands.IssuePackageResult, error) {
	return f(ctx, cmd)
}

type issueExtraditionFunc func(context.Context, commands.IssueExtraditionCommand) (commands.IssueExtraditionResult, error)

func (f issueExtraditionFunc) Handle(ctx context.Context, cmd commands.IssueExtraditionCommand) (commands.IssueExtraditionResult, error) {
	return f(ctx, cmd)
}

type deliverableFunc func(context.Context, queries.GetDeliverableCodesQuery) ([]queries.DeliverableDay, error)

func (f deliverableFunc) Handle(ctx context.Context, q queries.GetDeliverableCodesQuery) ([]queries.DeliverableDay, error) {
	return f(ctx, q)
}

type readyFunc func(context.Context, queries.GetCustomersWithReadyCodesQuery) ([]queries.ReadyCustomer, error)

func (f readyFunc) Handle(ctx context.Context, q queries.GetCustomersWithReadyCodesQuery) ([]queries.ReadyCustomer, error) {
	return f(ctx, q)
}

type receiptsFunc func(context.Context, queries.ListReceiptsQuery) iter.Seq2[queries.ReceiptView, error]

func (f receiptsFunc) Handle(ctx context.Context, q queries.ListReceiptsQuery) iter.Seq2[queries.ReceiptView, error] {
	return f(ctx, q)
}

type packagesFunc func(context.Context, queries.ListPackagesQuery) ([]queries.PackageView, error)

func (f packagesFunc) Handle(ctx context.Context, q queries.ListPackagesQuery) ([]queries.PackageView, error) {
	return f(ctx, q)
}

func newTestEcho(t *testing.T, h Handlers) *echo.Echo {
	t.Helper()
	e := echo.New()
	require.NoError(t, Mount(e, NewServer(h, slog.New(slog.DiscardHandler))))
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	e := newTestEcho(t, Handlers{})

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRegisterTrackCode(t *testing.T) {
	owner := kernel.NewUUID()
	var got commands.RegisterTrackCodeCommand
	e := newTestEcho(t, Handlers{
		RegisterTrackCode: registerFunc(func(_ context.Context, cmd commands.RegisterTrackCodeCommand) (int64, error) {
			got = cmd
			return 42, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/track-codes",
		fmt.Sprintf(`{"userId":%q,"code":" YT123 ","description":"shoes"}`, owner))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(42), decode[servers.Created](t, rec).Id)
	assert.True(t, got.OwnerID().IsEqual(owner))
	assert.Equal(t, "YT123", got.Code())
}

func TestRegisterTrackCodeDuplicate(t *testing.T) {
	e := newTestEcho(t, Handlers{
		RegisterTrackCode: registerFunc(func(context.Context, commands.RegisterTrackCodeCommand) (int64, error) {
			return 0, fmt.Errorf("YT123: %w", ports.ErrTrackCodeExists)
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/track-codes",
		fmt.Sprintf(`{"userId":%q,"code":"YT123"}`, kernel.NewUUID()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, decode[servers.Error](t, rec).Code)
}

func TestRegisterTrackCodeRejectsBodyWithoutCode(t *testing.T) {
	called := false
	e := newTestEcho(t, Handlers{
		RegisterTrackCode: registerFunc(func(context.Context, commands.RegisterTrackCodeCommand) (int64, error) {
			called = true
			return 1, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/track-codes", fmt.Sprintf(`{"userId":%q}`, kernel.NewUUID()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestUpdateTrackCodes(t *testing.T) {
	var got commands.UpdateTrackCodesCommand
	e := newTestEcho(t, Handlers{
		UpdateTrackCodes: updateFunc(func(_ context.Context, cmd commands.UpdateTrackCodesCommand) (commands.UpdateTrackCodesResult, error) {
			got = cmd
			return commands.UpdateTrackCodesResult{Updated: 1, Failed: 1, Warnings: []string{"Track code B: not found"}}, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/track-codes/status",
		`{"codes":"A 1.5\nB","status":"delivered","notify":true}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode[servers.BatchResult](t, rec)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"Track code B: not found"}, result.Warnings)
	assert.Equal(t, trackcode.Delivered, got.Status())
	assert.True(t, got.Notify())
	assert.False(t, got.IsCorrection())
	assert.Len(t, got.Updates(), 2)
}

func TestUpdateTrackCodesRejectsUnknownStatus(t *testing.T) {
	e := newTestEcho(t, Handlers{})

	rec := do(e, http.MethodPost, "/api/v1/track-codes/status", `{"codes":"A","status":"lost"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDeliverableCodes(t *testing.T) {
	owner := kernel.NewUUID()
	weight, err := kernel.WeightFromString("1.25")
	require.NoError(t, err)

	e := newTestEcho(t, Handlers{
		GetDeliverableCodes: deliverableFunc(func(_ context.Context, q queries.GetDeliverableCodesQuery) ([]queries.DeliverableDay, error) {
			assert.True(t, q.OwnerID().IsEqual(owner))
			return []queries.DeliverableDay{{
				Date:        "2024-03-01",
				TotalWeight: weight,
				Codes: []queries.DeliverableCode{
					{ID: 1, Code: "A", Status: trackcode.Ready, Weight: &weight, Billed: true},
					{ID: 2, Code: "B", Status: trackcode.Delivered},
				},
			}}, nil
		}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers/"+owner.String()+"/deliverable", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	days := decode[[]servers.DeliverableDay](t, rec)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "1.250", days[0].TotalWeight)
	require.Len(t, days[0].Codes, 2)
	assert.Equal(t, "ready", days[0].Codes[0].Status)
	require.NotNil(t, days[0].Codes[0].Weight)
	assert.Equal(t, "1.250", *days[0].Codes[0].Weight)
	assert.Nil(t, days[0].Codes[1].Weight)
}

func TestGetDeliverableCodesRejectsMalformedUserID(t *testing.T) {
	e := newTestEcho(t, Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/customers/not-a-uuid/deliverable", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomersWithReadyCodes(t *testing.T) {
	user := kernel.NewUUID()
	e := newTestEcho(t, Handlers{
		GetReadyCustomers: readyFunc(func(context.Context, queries.GetCustomersWithReadyCodesQuery) ([]queries.ReadyCustomer, error) {
			return []queries.ReadyCustomer{{UserID: user, Username: "alice", ReadyCount: 3}}, nil
		}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers/ready", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	customers := decode[[]servers.ReadyCustomer](t, rec)
	require.Len(t, customers, 1)
	assert.Equal(t, user.String(), customers[0].UserId.String())
	assert.Equal(t, 3, customers[0].ReadyCount)
}

func TestGenerateReceipt(t *testing.T) {
	owner := kernel.NewUUID()
	total, err := kernel.WeightFromString("2.5")
	require.NoError(t, err)

	var got commands.GenerateReceiptCommand
	e := newTestEcho(t, Handlers{
		GenerateReceipt: generateFunc(func(_ context.Context, cmd commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error) {
			got = cmd
			return commands.GenerateReceiptResult{
				ReceiptID:   7,
				ItemCount:   2,
				TotalWeight: total,
				TotalPrice:  1250,
				PaymentLink: "https://pay.example/a",
			}, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/customers/"+owner.String()+"/receipts", `{"pickupPoint":"Central"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[servers.GeneratedReceipt](t, rec)
	assert.Equal(t, int64(7), result.ReceiptId)
	assert.Equal(t, "2.500", result.TotalWeight)
	assert.Equal(t, int64(1250), result.TotalPrice)
	assert.Empty(t, result.UnweighedCodes)
	assert.Equal(t, "Central", got.PickupPoint())
}

func TestGenerateReceiptWithoutBody(t *testing.T) {
	e := newTestEcho(t, Handlers{
		GenerateReceipt: generateFunc(func(context.Context, commands.GenerateReceiptCommand) (commands.GenerateReceiptResult, error) {
			return commands.GenerateReceiptResult{}, fmt.Errorf("customer: %w", commands.ErrNoEligibleParcels)
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/customers/"+kernel.NewUUID().String()+"/receipts", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListReceiptsStopsAtLimit(t *testing.T) {
	yielded := 0
	e := newTestEcho(t, Handlers{
		ListReceipts: receiptsFunc(func(_ context.Context, q queries.ListReceiptsQuery) iter.Seq2[queries.ReceiptView, error] {
			assert.Equal(t, 2, q.PageSize())
			return func(yield func(queries.ReceiptView, error) bool) {
				for i := range 5 {
					yielded++
					view := queries.ReceiptView{ID: int64(10 - i), CreatedAt: time.Now().UTC()}
					if !yield(view, nil) {
						return
					}
				}
			}
		}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers/"+kernel.NewUUID().String()+"/receipts?limit=2", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	receipts := decode[[]servers.Receipt](t, rec)
	require.Len(t, receipts, 2)
	assert.Equal(t, int64(10), receipts[0].Id)
	assert.Equal(t, 2, yielded)
}

func TestListReceiptsIterationError(t *testing.T) {
	e := newTestEcho(t, Handlers{
		ListReceipts: receiptsFunc(func(context.Context, queries.ListReceiptsQuery) iter.Seq2[queries.ReceiptView, error] {
			return func(yield func(queries.ReceiptView, error) bool) {
				yield(queries.ReceiptView{}, errors.New("connection reset"))
			}
		}),
	})

	rec := do(e, http.MethodGet, "/api/v1/customers/"+kernel.NewUUID().String()+"/receipts", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestMarkReceiptPaid(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "paid", err: nil, want: http.StatusNoContent},
		{name: "already paid", err: receipt.ErrAlreadyPaid, want: http.StatusConflict},
		{name: "missing receipt", err: errs.NewObjectNotFoundError("receipt", int64(5)), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got commands.MarkReceiptPaidCommand
			e := newTestEcho(t, Handlers{
				MarkReceiptPaid: payFunc(func(_ context.Context, cmd commands.MarkReceiptPaidCommand) error {
					got = cmd
					return tt.err
				}),
			})

			rec := do(e, http.MethodPost, "/api/v1/receipts/5/pay", `{"paymentReference":"TX-1"}`)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, int64(5), got.ReceiptID())
			assert.Equal(t, "TX-1", got.PaymentReference())
		})
	}
}

func TestCreateDiscount(t *testing.T) {
	user := kernel.NewUUID()
	var got commands.CreateDiscountCommand
	e := newTestEcho(t, Handlers{
		CreateDiscount: createDiscountFunc(func(_ context.Context, cmd commands.CreateDiscountCommand) (int64, error) {
			got = cmd
			return 3, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/customers/"+user.String()+"/discounts",
		`{"amountPerKg":"1.50","isTemporary":true,"comment":"spring"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(3), decode[servers.Created](t, rec).Id)
	assert.True(t, got.AmountPerKg().Decimal().Equal(decimal.RequireFromString("1.5")))
	assert.True(t, got.IsTemporary())
}

func TestCreateDiscountRejectsMalformedAmount(t *testing.T) {
	e := newTestEcho(t, Handlers{})

	for _, amount := range []string{"1.234", "10000", "10000.00"} {
		rec := do(e, http.MethodPost, "/api/v1/customers/"+kernel.NewUUID().String()+"/discounts",
			`{"amountPerKg":"`+amount+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, amount)
	}
}

func TestRejectsOverlongText(t *testing.T) {
	e := newTestEcho(t, Handlers{})
	long := strings.Repeat("a", 101)
	user := kernel.NewUUID().String()

	cases := map[string]struct {
		method, path, body string
	}{
		"receipt pickup point": {http.MethodPost, "/api/v1/customers/" + user + "/receipts", `{"pickupPoint":"` + long + `"}`},
		"payment reference":    {http.MethodPost, "/api/v1/receipts/5/pay", `{"paymentReference":"` + long + `"}`},
		"package pickup point": {http.MethodPost, "/api/v1/packages", `{"userId":"` + user + `","pickupPoint":"` + long + `"}`},
		"extradition pickup point": {http.MethodPost, "/api/v1/extraditions",
			`{"userId":"` + user + `","pickupPoint":"` + long + `","codes":"TC1"}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(e, tc.method, tc.path, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestDeactivateDiscount(t *testing.T) {
	e := newTestEcho(t, Handlers{
		DeactivateDiscount: deactivateFunc(func(_ context.Context, cmd commands.DeactivateDiscountCommand) error {
			if cmd.DiscountID() == 9 {
				return discount.ErrAlreadyInactive
			}
			return nil
		}),
	})

	assert.Equal(t, http.StatusNoContent, do(e, http.MethodDelete, "/api/v1/discounts/1", "").Code)
	assert.Equal(t, http.StatusConflict, do(e, http.MethodDelete, "/api/v1/discounts/9", "").Code)
}

func TestIssuePackage(t *testing.T) {
	customer := kernel.NewUUID()
	operator := kernel.NewUUID()
	var got commands.IssuePackageCommand
	e := newTestEcho(t, Handlers{
		IssuePackage: issuePackageFunc(func(_ context.Context, cmd commands.IssuePackageCommand) (commands.IssuePackageResult, error) {
			got = cmd
			return commands.IssuePackageResult{PackageID: 11, Barcode: "PKG-000011", Count: 4}, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/packages",
		fmt.Sprintf(`{"userId":%q,"pickupPoint":"Central","operatorId":%q}`, customer, operator))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[servers.IssuedPackage](t, rec)
	assert.Equal(t, int64(11), result.PackageId)
	assert.Equal(t, 4, result.Count)
	require.NotNil(t, got.OperatorID())
	assert.True(t, got.OperatorID().IsEqual(operator))
}

func TestIssuePackageNothingToIssue(t *testing.T) {
	e := newTestEcho(t, Handlers{
		IssuePackage: issuePackageFunc(func(context.Context, commands.IssuePackageCommand) (commands.IssuePackageResult, error) {
			return commands.IssuePackageResult{}, commands.ErrNothingToIssue
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/packages",
		fmt.Sprintf(`{"userId":%q,"pickupPoint":"Central"}`, kernel.NewUUID()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListPackages(t *testing.T) {
	user := kernel.NewUUID()
	e := newTestEcho(t, Handlers{
		ListPackages: packagesFunc(func(_ context.Context, q queries.ListPackagesQuery) ([]queries.PackageView, error) {
			require.NotNil(t, q.UserID())
			assert.Equal(t, 10, q.Limit())
			return []queries.PackageView{{ID: 1, Barcode: "PKG1", UserID: user, Username: "alice", Codes: []string{"A", "B"}}}, nil
		}),
	})

	rec := do(e, http.MethodGet, "/api/v1/packages?userId="+user.String()+"&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	packages := decode[[]servers.Package](t, rec)
	require.Len(t, packages, 1)
	assert.Equal(t, []string{"A", "B"}, packages[0].Codes)
}

func TestIssueExtradition(t *testing.T) {
	receiptID := int64(4)
	var got commands.IssueExtraditionCommand
	e := newTestEcho(t, Handlers{
		IssueExtradition: issueExtraditionFunc(func(_ context.Context, cmd commands.IssueExtraditionCommand) (commands.IssueExtraditionResult, error) {
			got = cmd
			return commands.IssueExtraditionResult{
				ExtraditionID: 2,
				Issued:        []commands.IssuedPackage{{Code: "A", Barcode: "EXT1"}},
				Succeeded:     1,
				Failed:        1,
				Warnings:      []string{"Track code B: not found"},
			}, nil
		}),
	})

	rec := do(e, http.MethodPost, "/api/v1/extraditions",
		fmt.Sprintf(`{"userId":%q,"pickupPoint":"Central","codes":"A\nB","receiptId":%d}`, kernel.NewUUID(), receiptID))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[servers.ExtraditionResult](t, rec)
	assert.Equal(t, int64(2), result.ExtraditionId)
	assert.Equal(t, []servers.HandedOverCode{{Code: "A", Barcode: "EXT1"}}, result.Issued)
	assert.Equal(t, 1, result.Failed)
	require.NotNil(t, got.ReceiptID())
	assert.Equal(t, receiptID, *got.ReceiptID())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewValueIsRequiredError("code"), http.StatusBadRequest},
		{errs.NewValueIsInvalidError("weight"), http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("limit", 0, 1, 500), http.StatusBadRequest},
		{errs.NewObjectNotFoundError("user", "x"), http.StatusNotFound},
		{fmt.Errorf("A: %w", ports.ErrTrackCodeExists), http.StatusConflict},
		{commands.ErrTrackCodeAlreadyBilled, http.StatusConflict},
		{receipt.ErrAlreadyPaid, http.StatusConflict},
		{discount.ErrAlreadyInactive, http.StatusConflict},
		{commands.ErrNoEligibleParcels, http.StatusUnprocessableEntity},
		{commands.ErrNothingToIssue, http.StatusUnprocessableEntity},
		{errs.NewInvalidTransitionError("track code", "claimed", "ready"), http.StatusUnprocessableEntity},
		{commands.ErrIssuanceFailed, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}
