package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/hedelmia/pos-api/internal/application/analytics"
	"github.com/hedelmia/pos-api/internal/application/cash"
	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/inventory"
	"github.com/hedelmia/pos-api/internal/application/pin"
	"github.com/hedelmia/pos-api/internal/application/receipts"
	"github.com/hedelmia/pos-api/internal/application/sales"
	"github.com/hedelmia/pos-api/internal/application/usecase"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
	infrapdf "github.com/hedelmia/pos-api/internal/infrastructure/pdf"
	apphttp "github.com/hedelmia/pos-api/internal/interfaces/http"
)

const testSecret = "test-secret-key-for-unit-tests"

// buildTestApp arma la API completa sobre el almacén en memoria con:
//   - fresa: stock 3, precio 25
//   - mango: stock 10, precio 50
//   - don-pepe: límite 1000, saldo 900
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := memory.NewStore("")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Run(ctx, func(repos repository.Repositories) error {
		for _, p := range []*entity.Product{
			{ID: "fresa", Name: "Paleta de fresa", Price: decimal.NewFromInt(25), Stock: 3, Active: true},
			{ID: "mango", Name: "Paleta de mango", Price: decimal.NewFromInt(50), Stock: 10, Active: true},
		} {
			if err := repos.Products.Create(ctx, p); err != nil {
				return err
			}
		}
		return repos.Customers.Create(ctx, &entity.Customer{
			ID: "don-pepe", Name: "Abarrotes Don Pepe", CreditLimit: decimal.NewFromInt(1000),
			Balance: decimal.NewFromInt(900), Active: true,
		})
	}))

	repos := store.Repositories()
	log := zerolog.Nop()
	inv := inventory.NewLedger(store, repos, log)
	cashLedger := cash.NewLedger(store, repos, log)
	creditLedger := credit.NewLedger(store, repos, log)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store, repos),
		MaterialUC:  usecase.NewMaterialUseCase(store, repos),
		CustomerUC:  usecase.NewCustomerUseCase(store, repos),
		FridgeUC:    usecase.NewFridgeLoanUseCase(store, repos),
		Inventory:   inv,
		Cash:        cashLedger,
		Credit:      creditLedger,
		Cart:        sales.NewCartUseCase(repos.Products),
		Checkout:    sales.NewCheckoutUseCase(store, repos, inv, cashLedger, creditLedger, log),
		Receipts:    receipts.NewUseCase(repos, infrapdf.NewMarotoReceiptGenerator(), "Hedelmiá"),
		PIN:         pin.NewGate(store, repos.Settings, pin.Config{Secret: testSecret, Issuer: "test", TTL: time.Minute}, log),
		DashboardUC: appanalytics.NewDashboardUseCase(repos, 0),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func checkoutBody(items ...any) fiber.Map {
	lines := make([]fiber.Map, 0, len(items)/2)
	for i := 0; i+1 < len(items); i += 2 {
		lines = append(lines, fiber.Map{"product_id": items[i], "quantity": items[i+1]})
	}
	return fiber.Map{"items": lines}
}

func TestCheckout_VentaConfirmada(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", checkoutBody("fresa", 2, "mango", 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sale := decode[dto.SaleResponse](t, resp)
	assert.Equal(t, "V-000001", sale.Folio)
	assert.Equal(t, "100.00", sale.Total.StringFixed(2))
	assert.Equal(t, entity.PaymentCash, sale.PaymentMethod)

	resp = doJSON(t, app, http.MethodGet, "/api/cash/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bal := decode[dto.CashBalanceResponse](t, resp)
	assert.Equal(t, "100.00", bal.Grande.StringFixed(2))
	assert.Equal(t, "0.00", bal.Chica.StringFixed(2))

	resp = doJSON(t, app, http.MethodGet, "/api/products/fresa", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), decode[dto.ProductResponse](t, resp).Stock)

	resp = doJSON(t, app, http.MethodGet, "/api/sales/folio/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, sale.ID, decode[dto.SaleResponse](t, resp).ID)
}

func TestCheckout_StockInsuficiente422(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", checkoutBody("mango", 1, "fresa", 4))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, "fresa", body.Field)

	resp = doJSON(t, app, http.MethodGet, "/api/sales", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.ListResponse[dto.SaleResponse]](t, resp).Total)
}

func TestCheckout_CarritoVacio400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", fiber.Map{"items": []any{}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMPTY_CART", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCheckout_CreditoSobreLimite422(t *testing.T) {
	app := buildTestApp(t)
	body := checkoutBody("mango", 3)
	body["customer_id"] = "don-pepe"
	body["credit_sale"] = true

	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CREDIT_LIMIT_EXCEEDED", e.Code)
	assert.Equal(t, "don-pepe", e.Field)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/don-pepe", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "900.00", decode[dto.CustomerResponse](t, resp).Balance.StringFixed(2))
}

func TestCart_IncrementoQueExcedeStock(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales/cart/items", fiber.Map{
		"cart": fiber.Map{"lines": []any{}}, "product_id": "fresa", "quantity": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart := decode[dto.CartResponse](t, resp)
	require.Len(t, cart.Cart.Lines, 1)
	assert.Equal(t, "50.00", cart.Subtotal.StringFixed(2))

	resp = doJSON(t, app, http.MethodPost, "/api/sales/cart/items", fiber.Map{
		"cart": cart.Cart, "product_id": "fresa", "quantity": 2,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	assert.Equal(t, "fresa", e.Field)
}

func TestValidacion_CampoConNombreJSON(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/cash/movements", fiber.Map{
		"box": "mediana", "kind": "entrada", "amount": "10",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Equal(t, "box", e.Field)
}

func TestProducto_NoEncontrado404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/nada", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestPagare_MontoMayorAlSaldo422(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/promissory-notes", fiber.Map{
		"customer_id": "don-pepe", "amount": "1200",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "AMOUNT_EXCEEDS_BALANCE", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/promissory-notes", fiber.Map{
		"customer_id": "don-pepe", "amount": "300",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	note := decode[dto.PromissoryNoteResponse](t, resp)
	assert.Equal(t, entity.NoteStatusVigente, note.Status)

	resp = doJSON(t, app, http.MethodGet, "/api/promissory-notes/"+note.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestTicket_PDF(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", checkoutBody("mango", 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sale := decode[dto.SaleResponse](t, resp)

	resp = doJSON(t, app, http.MethodGet, "/api/sales/"+sale.ID+"/ticket.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ticket_V-000001.pdf")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestConfirmacion_BorradoDeMovimientoDeCaja(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cash/movements", fiber.Map{
		"box": "chica", "kind": "entrada", "concept": "fondo", "amount": "150.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decode[dto.CashMovementResponse](t, resp)

	resp = doJSON(t, app, http.MethodDelete, "/api/cash/movements/"+mov.ID, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_REQUIRED", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodDelete, "/api/cash/movements/"+mov.ID, nil, apphttp.HeaderConfirmToken, "basura")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PIN_INVALID", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/pin/verify", fiber.Map{"pin": "1234"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "PIN_NOT_SET", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPut, "/api/pin", fiber.Map{"pin": "1234"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/pin/verify", fiber.Map{"pin": "9999"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/pin/verify", fiber.Map{"pin": "1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	conf := decode[dto.ConfirmationResponse](t, resp)
	require.NotEmpty(t, conf.Token)

	resp = doJSON(t, app, http.MethodDelete, "/api/cash/movements/"+mov.ID, nil, apphttp.HeaderConfirmToken, conf.Token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/cash/movements?box=chica", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.ListResponse[dto.CashMovementResponse]](t, resp).Total)
}

func TestDashboard_ResumenDelDia(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales/checkout", checkoutBody("mango", 2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 1, sum.SalesCount)
	assert.Equal(t, "100.00", sum.SalesTotal.StringFixed(2))
	assert.Equal(t, "900.00", sum.Receivables.StringFixed(2))
	require.Len(t, sum.LowStock, 1)
	assert.Equal(t, "fresa", sum.LowStock[0].ProductID)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard?date=ayer", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
