package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hedelmia/pos-api/internal/application/usecase"
	"github.com/hedelmia/pos-api/internal/infrastructure/csvimport"
)

// summary resultado de una importación.
type summary struct {
	Created int
	Skipped int
	Failed  int
}

func (s summary) String() string {
	return fmt.Sprintf("creados=%d omitidos=%d fallidos=%d", s.Created, s.Skipped, s.Failed)
}

type importer struct {
	products  *usecase.ProductUseCase
	customers *usecase.CustomerUseCase
	log       zerolog.Logger
	dryRun    bool
}

func productKey(flavor, typ, presentation string) string {
	return csvimport.Key(flavor) + "|" + csvimport.Key(typ) + "|" + csvimport.Key(presentation)
}

// importProducts da de alta los productos que no existan ya (mismo sabor, tipo y presentación,
// sin importar acentos ni mayúsculas). Las filas repetidas dentro del archivo se omiten.
func (im *importer) importProducts(ctx context.Context, rows []csvimport.ProductRow) (summary, error) {
	var s summary
	existing, err := im.products.List(ctx, true)
	if err != nil {
		return s, err
	}
	seen := make(map[string]bool, len(existing)+len(rows))
	for _, p := range existing {
		seen[productKey(p.Flavor, p.Type, p.Presentation)] = true
	}
	for _, row := range rows {
		key := productKey(row.Request.Flavor, row.Request.Type, row.Request.Presentation)
		if seen[key] {
			im.log.Debug().Int("line", row.Line).Str("key", key).Msg("producto ya existe")
			s.Skipped++
			continue
		}
		seen[key] = true
		if im.dryRun {
			s.Created++
			continue
		}
		p, err := im.products.Create(ctx, row.Request)
		if err != nil {
			im.log.Warn().Err(err).Int("line", row.Line).Msg("alta de producto")
			s.Failed++
			continue
		}
		im.log.Info().Str("product_id", p.ID).Str("flavor", p.Flavor).Int64("stock", p.Stock).Msg("producto importado")
		s.Created++
	}
	return s, nil
}

// importCustomers da de alta los clientes cuyo nombre normalizado no exista.
func (im *importer) importCustomers(ctx context.Context, rows []csvimport.CustomerRow) (summary, error) {
	var s summary
	existing, err := im.customers.List(ctx, true)
	if err != nil {
		return s, err
	}
	seen := make(map[string]bool, len(existing)+len(rows))
	for _, c := range existing {
		seen[csvimport.Key(c.Name)] = true
	}
	for _, row := range rows {
		key := csvimport.Key(row.Request.Name)
		if seen[key] {
			s.Skipped++
			continue
		}
		seen[key] = true
		if im.dryRun {
			s.Created++
			continue
		}
		c, err := im.customers.Create(ctx, row.Request)
		if err != nil {
			im.log.Warn().Err(err).Int("line", row.Line).Msg("alta de cliente")
			s.Failed++
			continue
		}
		im.log.Info().Str("customer_id", c.ID).Str("name", c.Name).Msg("cliente importado")
		s.Created++
	}
	return s, nil
}
