// Package analytics contiene el resumen diario del punto de venta.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/domain/cash"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de stock bajo si la configuración no define otro.
const DefaultLowStockThreshold = 5

// DashboardUseCase genera el resumen del día: ventas, cajas, cartera y refrigeradores.
// Solo lectura; todo se recalcula desde los registros.
type DashboardUseCase struct {
	repos     repository.Repositories
	threshold int64
}

// NewDashboardUseCase construye el caso de uso. threshold <= 0 usa DefaultLowStockThreshold.
func NewDashboardUseCase(repos repository.Repositories, threshold int64) *DashboardUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &DashboardUseCase{repos: repos, threshold: threshold}
}

// GetSummary construye el DashboardSummaryDTO para el día de date (zona horaria de date).
//
// Cuatro lecturas en paralelo:
//  1. Ventas del día          → conteo, total, a crédito, por forma de pago
//  2. Movimientos de caja     → saldo chica/grande
//  3. Clientes                → cartera (Σ saldos)
//  4. Productos + préstamos   → stock bajo y refrigeradores fuera
func (uc *DashboardUseCase) GetSummary(ctx context.Context, date time.Time) (*dto.DashboardSummaryDTO, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type cashResult struct {
		movements []*entity.CashMovement
		err       error
	}
	type customersResult struct {
		customers []*entity.Customer
		err       error
	}
	type stockResult struct {
		products []*entity.Product
		loans    []*entity.FridgeLoan
		err      error
	}

	salesCh := make(chan salesResult, 1)
	cashCh := make(chan cashResult, 1)
	customersCh := make(chan customersResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		s, err := uc.repos.Sales.List(ctx, &dayStart, &dayEnd)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		m, err := uc.repos.Cash.ListByBox(ctx, "", nil, nil)
		cashCh <- cashResult{m, err}
	}()
	go func() {
		c, err := uc.repos.Customers.List(ctx, true)
		customersCh <- customersResult{c, err}
	}()
	go func() {
		p, err := uc.repos.Products.List(ctx, false)
		if err != nil {
			stockCh <- stockResult{err: err}
			return
		}
		l, err := uc.repos.FridgeLoans.List(ctx, "")
		stockCh <- stockResult{p, l, err}
	}()

	sales := <-salesCh
	movements := <-cashCh
	customers := <-customersCh
	stock := <-stockCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del día: %w", sales.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de caja: %w", movements.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", stock.err)
	}

	out := &dto.DashboardSummaryDTO{
		Date:        dayStart.Format("2006-01-02"),
		SalesTotal:  decimal.Zero,
		CreditSales: decimal.Zero,
		ByPayment:   map[string]decimal.Decimal{},
		Cash: dto.CashBalanceResponse{
			Chica:  cash.Balance(entity.CashBoxChica, movements.movements),
			Grande: cash.Balance(entity.CashBoxGrande, movements.movements),
		},
		Receivables: decimal.Zero,
		LowStock:    []dto.LowStockDTO{},
	}

	for _, s := range sales.sales {
		out.SalesCount++
		out.SalesTotal = out.SalesTotal.Add(s.Total)
		out.ByPayment[s.PaymentMethod] = out.ByPayment[s.PaymentMethod].Add(s.Total)
		if s.CreditSale {
			out.CreditSales = out.CreditSales.Add(s.Total)
		}
	}
	for _, c := range customers.customers {
		out.Receivables = out.Receivables.Add(c.Balance)
	}
	for _, l := range stock.loans {
		if l.Status == entity.FridgeStatusEntregado {
			out.FridgesOut += l.Quantity
		}
	}
	for _, p := range stock.products {
		if p.Stock <= uc.threshold {
			out.LowStock = append(out.LowStock, dto.LowStockDTO{ProductID: p.ID, Name: p.DisplayName(), Stock: p.Stock})
		}
	}
	sort.Slice(out.LowStock, func(i, j int) bool {
		if out.LowStock[i].Stock != out.LowStock[j].Stock {
			return out.LowStock[i].Stock < out.LowStock[j].Stock
		}
		return out.LowStock[i].Name < out.LowStock[j].Name
	})
	return out, nil
}
