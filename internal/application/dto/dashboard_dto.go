package dto

import "github.com/shopspring/decimal"

// LowStockDTO producto con stock igual o menor al umbral.
type LowStockDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
}

// DashboardSummaryDTO resumen del día.
type DashboardSummaryDTO struct {
	Date        string                     `json:"date"`
	SalesCount  int                        `json:"sales_count"`
	SalesTotal  decimal.Decimal            `json:"sales_total"`
	CreditSales decimal.Decimal            `json:"credit_sales"`
	ByPayment   map[string]decimal.Decimal `json:"by_payment"`
	Cash        CashBalanceResponse        `json:"cash"`
	Receivables decimal.Decimal            `json:"receivables"`
	FridgesOut  int                        `json:"fridges_out"`
	LowStock    []LowStockDTO              `json:"low_stock"`
}
