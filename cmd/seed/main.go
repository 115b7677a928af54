// seed importa el catálogo inicial (productos y clientes) desde exportaciones CSV
// de la hoja de cálculo del negocio, usando el mismo almacén que la API (STORE_DRIVER).
//
// Uso:
//
//	go run ./cmd/seed products productos.csv
//	go run ./cmd/seed customers clientes.csv --dry-run
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hedelmia/pos-api/internal/application/usecase"
	"github.com/hedelmia/pos-api/internal/infrastructure/csvimport"
	"github.com/hedelmia/pos-api/internal/infrastructure/store"
	"github.com/hedelmia/pos-api/pkg/config"
	"github.com/hedelmia/pos-api/pkg/logger"
)

var dryRun bool

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Importa productos y clientes desde CSV",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var productsCmd = &cobra.Command{
	Use:   "products <archivo.csv>",
	Short: "Importa productos (sabor, tipo, presentacion, nombre, precio, costo, stock)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0], func(ctx context.Context, im *importer, f *os.File) (summary, []csvimport.RowError, error) {
			rows, bad, err := csvimport.ReadProducts(f)
			if err != nil {
				return summary{}, nil, err
			}
			s, err := im.importProducts(ctx, rows)
			return s, bad, err
		})
	},
}

var customersCmd = &cobra.Command{
	Use:   "customers <archivo.csv>",
	Short: "Importa clientes (nombre, telefono, limite)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0], func(ctx context.Context, im *importer, f *os.File) (summary, []csvimport.RowError, error) {
			rows, bad, err := csvimport.ReadCustomers(f)
			if err != nil {
				return summary{}, nil, err
			}
			s, err := im.importCustomers(ctx, rows)
			return s, bad, err
		})
	},
}

type importFunc func(ctx context.Context, im *importer, f *os.File) (summary, []csvimport.RowError, error)

func run(ctx context.Context, path string, fn importFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	st, err := store.Open(ctx, cfg, log.Zerolog())
	if err != nil {
		return err
	}
	defer st.Close()

	im := &importer{
		products:  usecase.NewProductUseCase(st.Tx, st.Repos),
		customers: usecase.NewCustomerUseCase(st.Tx, st.Repos),
		log:       log.Zerolog(),
		dryRun:    dryRun,
	}
	s, bad, err := fn(ctx, im, f)
	if err != nil {
		return err
	}
	for _, e := range bad {
		log.Warn().Int("line", e.Line).Err(e.Err).Msg("fila ignorada")
	}
	s.Failed += len(bad)
	log.Info().
		Str("file", path).
		Str("store", st.Driver).
		Bool("dry_run", dryRun).
		Int("created", s.Created).
		Int("skipped", s.Skipped).
		Int("failed", s.Failed).
		Msg("importación terminada")
	fmt.Println(s)
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "valida y cuenta sin escribir en el almacén")
	rootCmd.AddCommand(productsCmd, customersCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}
