package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/hedelmia/pos-api/docs"
	appanalytics "github.com/hedelmia/pos-api/internal/application/analytics"
	"github.com/hedelmia/pos-api/internal/application/cash"
	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/application/inventory"
	"github.com/hedelmia/pos-api/internal/application/pin"
	"github.com/hedelmia/pos-api/internal/application/receipts"
	"github.com/hedelmia/pos-api/internal/application/sales"
	"github.com/hedelmia/pos-api/internal/application/usecase"
	infrapdf "github.com/hedelmia/pos-api/internal/infrastructure/pdf"
	"github.com/hedelmia/pos-api/internal/infrastructure/store"
	httpRouter "github.com/hedelmia/pos-api/internal/interfaces/http"
	"github.com/hedelmia/pos-api/pkg/config"
	"github.com/hedelmia/pos-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// swaggerPath usa el archivo del repo si existe; si no (binario desplegado fuera del repo)
// vuelca el documento registrado en swag a un archivo temporal.
func swaggerPath() (string, error) {
	if _, err := os.Stat(swaggerFile); err == nil {
		return swaggerFile, nil
	}
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), "hedelmia-swagger.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer st.Close()

	repos := st.Repos
	inventoryLedger := inventory.NewLedger(st.Tx, repos, log.Component("inventario"))
	cashLedger := cash.NewLedger(st.Tx, repos, log.Component("caja"))
	creditLedger := credit.NewLedger(st.Tx, repos, log.Component("credito"))
	checkoutUC := sales.NewCheckoutUseCase(st.Tx, repos, inventoryLedger, cashLedger, creditLedger, log.Component("checkout"))
	pinGate := pin.NewGate(st.Tx, repos.Settings, pin.Config{
		Secret: cfg.Confirm.Secret,
		Issuer: cfg.Confirm.Issuer,
		TTL:    cfg.Confirm.TTL(),
	}, log.Component("pin"))

	// PDF: ticket de venta y pagaré
	receiptsUC := receipts.NewUseCase(repos, infrapdf.NewMarotoReceiptGenerator(), cfg.Business.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, " + httpRouter.HeaderConfirmToken,
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if path, err := swaggerPath(); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: path,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Err(err).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": st.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(st.Tx, repos),
		MaterialUC:  usecase.NewMaterialUseCase(st.Tx, repos),
		CustomerUC:  usecase.NewCustomerUseCase(st.Tx, repos),
		FridgeUC:    usecase.NewFridgeLoanUseCase(st.Tx, repos),
		Inventory:   inventoryLedger,
		Cash:        cashLedger,
		Credit:      creditLedger,
		Cart:        sales.NewCartUseCase(repos.Products),
		Checkout:    checkoutUC,
		Receipts:    receiptsUC,
		PIN:         pinGate,
		DashboardUC: appanalytics.NewDashboardUseCase(repos, int64(cfg.Business.LowStockThreshold)),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
