package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/hedelmia/pos-api/internal/application/analytics"
	"github.com/hedelmia/pos-api/internal/application/cash"
	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/application/inventory"
	"github.com/hedelmia/pos-api/internal/application/pin"
	"github.com/hedelmia/pos-api/internal/application/receipts"
	"github.com/hedelmia/pos-api/internal/application/sales"
	"github.com/hedelmia/pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	MaterialUC  *usecase.MaterialUseCase
	CustomerUC  *usecase.CustomerUseCase
	FridgeUC    *usecase.FridgeLoanUseCase
	Inventory   *inventory.Ledger
	Cash        *cash.Ledger
	Credit      *credit.Ledger
	Cart        *sales.CartUseCase
	Checkout    *sales.CheckoutUseCase
	Receipts    *receipts.UseCase
	PIN         *pin.Gate
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	confirm := ConfirmMiddleware(deps.PIN)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Inventory)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/deactivate", productHandler.Deactivate)
	products.Post("/:id/activate", productHandler.Activate)
	products.Post("/:id/stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.Movements)

	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.Inventory)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Post("/:id/stock", materialHandler.RegisterMovement)
	materials.Get("/:id/movements", materialHandler.Movements)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Credit)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Put("/:id/balance", customerHandler.SetBalance)
	customers.Post("/:id/deactivate", customerHandler.Deactivate)
	customers.Get("/:id/promissory-notes", customerHandler.PromissoryNotes)
	customers.Get("/:id/credits", customerHandler.Credits)

	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.Cart, deps.Checkout, deps.Receipts)
	salesGroup.Post("/cart/items", saleHandler.AddCartItem)
	salesGroup.Post("/checkout", saleHandler.Checkout)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/folio/:folio", saleHandler.GetByFolio)
	salesGroup.Get("/:id/ticket.pdf", saleHandler.Ticket)
	salesGroup.Get("/:id", saleHandler.GetByID)

	cashGroup := api.Group("/cash")
	cashHandler := NewCashHandler(deps.Cash)
	cashGroup.Post("/movements", cashHandler.PostMovement)
	cashGroup.Get("/movements", cashHandler.ListMovements)
	cashGroup.Get("/balance", cashHandler.Balance)
	cashGroup.Delete("/movements/:id", confirm, cashHandler.DeleteMovement)

	creditHandler := NewCreditHandler(deps.Credit, deps.Receipts)
	notes := api.Group("/promissory-notes")
	notes.Post("/", creditHandler.IssueNote)
	notes.Put("/:id/status", creditHandler.SetNoteStatus)
	notes.Get("/:id/pdf", creditHandler.NotePDF)
	notes.Delete("/:id", confirm, creditHandler.DeleteNote)

	credits := api.Group("/credits")
	credits.Post("/", creditHandler.CreateCredit)
	credits.Get("/:id", creditHandler.GetCredit)
	credits.Post("/:id/payments", creditHandler.RecordPayment)
	credits.Put("/:id/status", creditHandler.SetCreditStatus)
	credits.Delete("/:id", confirm, creditHandler.DeleteCredit)
	credits.Delete("/:id/payments/:paymentId", confirm, creditHandler.DeletePayment)

	fridges := api.Group("/fridge-loans")
	fridgeHandler := NewFridgeHandler(deps.FridgeUC)
	fridges.Post("/", fridgeHandler.Lend)
	fridges.Get("/", fridgeHandler.List)
	fridges.Post("/:id/return", fridgeHandler.Return)

	pinGroup := api.Group("/pin")
	pinHandler := NewPINHandler(deps.PIN)
	pinGroup.Get("/status", pinHandler.Status)
	pinGroup.Put("/", pinHandler.Set)
	pinGroup.Post("/verify", pinHandler.Verify)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)
}
