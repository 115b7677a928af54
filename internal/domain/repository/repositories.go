package repository

// Repositories agrupa los puertos de persistencia atados a una misma conexión o transacción.
// Cada adaptador (postgres, sqlite, memory) construye uno por transacción.
type Repositories struct {
	Products          ProductRepository
	StockMovements    StockMovementRepository
	Materials         RawMaterialRepository
	MaterialMovements MaterialMovementRepository
	Customers         CustomerRepository
	Sales             SaleRepository
	Cash              CashMovementRepository
	Notes             PromissoryNoteRepository
	Credits           CreditRepository
	FridgeLoans       FridgeLoanRepository
	Settings          SettingRepository
}
