package sqlite

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository           = (*SaleRepo)(nil)
	_ repository.CashMovementRepository   = (*CashMovementRepo)(nil)
	_ repository.PromissoryNoteRepository = (*PromissoryNoteRepo)(nil)
	_ repository.CreditRepository         = (*CreditRepo)(nil)
	_ repository.FridgeLoanRepository     = (*FridgeLoanRepo)(nil)
	_ repository.SettingRepository        = (*SettingRepo)(nil)
)

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("line") })
}

// SaleRepo ventas (cabecera + líneas).
type SaleRepo struct {
	db *gorm.DB
}

// Create inserta cabecera y líneas en la misma sentencia de GORM.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	return translate(r.db.WithContext(ctx).Create(saleModel(s)).Error, "venta", s.Folio)
}

func (r *SaleRepo) getOne(ctx context.Context, column, value string) (*entity.Sale, error) {
	var m SaleModel
	ok, err := first(withItems(r.db.WithContext(ctx)).Where(column+" = ?", value), &m)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	return r.getOne(ctx, "id", id)
}

func (r *SaleRepo) GetByFolio(ctx context.Context, folio string) (*entity.Sale, error) {
	return r.getOne(ctx, "folio", folio)
}

func (r *SaleRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	var rows []SaleModel
	if err := withItems(r.db.WithContext(ctx)).Order("rowid DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var out []*entity.Sale
	for i := range rows {
		if inRange(rows[i].Date, from, to) {
			out = append(out, rows[i].ToDomain())
		}
	}
	return out, nil
}

// NextFolioNumber incrementa el contador con un upsert. Al correr dentro de la transacción,
// un rollback devuelve el número.
func (r *SaleRepo) NextFolioNumber(ctx context.Context, stream string) (int64, error) {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stream"}},
		DoUpdates: clause.Assignments(map[string]any{"last_number": gorm.Expr("last_number + 1")}),
	}).Create(&FolioCounterModel{Stream: stream, LastNumber: 1}).Error
	if err != nil {
		return 0, fmt.Errorf("next folio: %w", err)
	}
	var c FolioCounterModel
	if err := db.Where("stream = ?", stream).First(&c).Error; err != nil {
		return 0, fmt.Errorf("read folio: %w", err)
	}
	return c.LastNumber, nil
}

// CashMovementRepo libro de caja.
type CashMovementRepo struct {
	db *gorm.DB
}

func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	err := r.db.WithContext(ctx).Create(&CashMovementModel{
		ID: m.ID, Box: m.Box, Kind: m.Kind, Concept: m.Concept, Amount: m.Amount,
		Date: m.Date, Origin: m.Origin, SaleID: m.SaleID, CreatedAt: m.CreatedAt,
	}).Error
	return translate(err, "movimiento de caja", m.ID)
}

func (r *CashMovementRepo) GetByID(ctx context.Context, id string) (*entity.CashMovement, error) {
	var m CashMovementModel
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get cash movement: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *CashMovementRepo) ListByBox(ctx context.Context, box string, from, to *time.Time) ([]*entity.CashMovement, error) {
	q := r.db.WithContext(ctx).Order("rowid")
	if box != "" {
		q = q.Where("box = ?", box)
	}
	var rows []CashMovementModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	var out []*entity.CashMovement
	for i := range rows {
		if inRange(rows[i].Date, from, to) {
			out = append(out, rows[i].ToDomain())
		}
	}
	return out, nil
}

func (r *CashMovementRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&CashMovementModel{})
	if res.Error != nil {
		return fmt.Errorf("delete cash movement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("movimiento de caja", id)
	}
	return nil
}

// PromissoryNoteRepo pagarés.
type PromissoryNoteRepo struct {
	db *gorm.DB
}

func (r *PromissoryNoteRepo) Create(ctx context.Context, n *entity.PromissoryNote) error {
	err := r.db.WithContext(ctx).Create(&PromissoryNoteModel{
		ID: n.ID, CustomerID: n.CustomerID, Amount: n.Amount, IssueDate: n.IssueDate,
		DueDate: n.DueDate, Status: n.Status, Note: n.Note, CreatedAt: n.CreatedAt,
	}).Error
	return translate(err, "pagaré", n.ID)
}

func (r *PromissoryNoteRepo) GetByID(ctx context.Context, id string) (*entity.PromissoryNote, error) {
	var m PromissoryNoteModel
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *PromissoryNoteRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.PromissoryNote, error) {
	var rows []PromissoryNoteModel
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	out := make([]*entity.PromissoryNote, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *PromissoryNoteRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&PromissoryNoteModel{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("pagaré", id)
	}
	return nil
}

func (r *PromissoryNoteRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PromissoryNoteModel{})
	if res.Error != nil {
		return fmt.Errorf("delete note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("pagaré", id)
	}
	return nil
}

// CreditRepo créditos con sus abonos.
type CreditRepo struct {
	db *gorm.DB
}

func withPayments(db *gorm.DB) *gorm.DB {
	return db.Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("rowid") })
}

func (r *CreditRepo) Create(ctx context.Context, c *entity.Credit) error {
	err := r.db.WithContext(ctx).Omit("Payments").Create(&CreditModel{
		ID: c.ID, CustomerID: c.CustomerID, Amount: c.Amount, Date: c.Date,
		Status: c.Status, Note: c.Note, CreatedAt: c.CreatedAt,
	}).Error
	return translate(err, "crédito", c.ID)
}

func (r *CreditRepo) GetByID(ctx context.Context, id string) (*entity.Credit, error) {
	var m CreditModel
	ok, err := first(withPayments(r.db.WithContext(ctx)).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get credit: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *CreditRepo) GetForUpdate(ctx context.Context, id string) (*entity.Credit, error) {
	return r.GetByID(ctx, id)
}

func (r *CreditRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Credit, error) {
	var rows []CreditModel
	err := withPayments(r.db.WithContext(ctx)).Where("customer_id = ?", customerID).Order("rowid").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	out := make([]*entity.Credit, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (r *CreditRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&CreditModel{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update credit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("crédito", id)
	}
	return nil
}

// Delete borra primero los abonos para no depender de que el driver tenga activas las FK.
func (r *CreditRepo) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("credit_id = ?", id).Delete(&CreditPaymentModel{}).Error; err != nil {
		return fmt.Errorf("delete credit payments: %w", err)
	}
	res := db.Where("id = ?", id).Delete(&CreditModel{})
	if res.Error != nil {
		return fmt.Errorf("delete credit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("crédito", id)
	}
	return nil
}

func (r *CreditRepo) AddPayment(ctx context.Context, p *entity.CreditPayment) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&CreditModel{}).Where("id = ?", p.CreditID).Count(&n).Error; err != nil {
		return fmt.Errorf("check credit: %w", err)
	}
	if n == 0 {
		return domain.NotFound("crédito", p.CreditID)
	}
	err := r.db.WithContext(ctx).Create(&CreditPaymentModel{
		ID: p.ID, CreditID: p.CreditID, Amount: p.Amount, Date: p.Date, Note: p.Note, CreatedAt: p.CreatedAt,
	}).Error
	return translate(err, "abono", p.ID)
}

func (r *CreditRepo) DeletePayment(ctx context.Context, creditID, paymentID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND credit_id = ?", paymentID, creditID).Delete(&CreditPaymentModel{})
	if res.Error != nil {
		return fmt.Errorf("delete payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("abono", paymentID)
	}
	return nil
}

// FridgeLoanRepo préstamos de refrigeradores.
type FridgeLoanRepo struct {
	db *gorm.DB
}

func loanModel(l *entity.FridgeLoan) *FridgeLoanModel {
	return &FridgeLoanModel{
		ID: l.ID, CustomerID: l.CustomerID, Quantity: l.Quantity, DeliveryDate: l.DeliveryDate,
		Status: l.Status, ReturnDate: l.ReturnDate, Note: l.Note, CreatedAt: l.CreatedAt,
	}
}

func (r *FridgeLoanRepo) Create(ctx context.Context, l *entity.FridgeLoan) error {
	return translate(r.db.WithContext(ctx).Create(loanModel(l)).Error, "préstamo", l.ID)
}

func (r *FridgeLoanRepo) GetByID(ctx context.Context, id string) (*entity.FridgeLoan, error) {
	var m FridgeLoanModel
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get fridge loan: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *FridgeLoanRepo) Update(ctx context.Context, l *entity.FridgeLoan) error {
	res := r.db.WithContext(ctx).Model(&FridgeLoanModel{}).Where("id = ?", l.ID).Updates(map[string]any{
		"customer_id":   l.CustomerID,
		"quantity":      l.Quantity,
		"delivery_date": l.DeliveryDate,
		"status":        l.Status,
		"return_date":   l.ReturnDate,
		"note":          l.Note,
	})
	if res.Error != nil {
		return fmt.Errorf("update fridge loan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("préstamo", l.ID)
	}
	return nil
}

func (r *FridgeLoanRepo) List(ctx context.Context, customerID string) ([]*entity.FridgeLoan, error) {
	q := r.db.WithContext(ctx).Order("rowid")
	if customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}
	var rows []FridgeLoanModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list fridge loans: %w", err)
	}
	out := make([]*entity.FridgeLoan, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// SettingRepo ajustes clave/valor.
type SettingRepo struct {
	db *gorm.DB
}

func (r *SettingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var m SettingModel
	ok, err := first(r.db.WithContext(ctx).Where(map[string]any{"key": key}), &m)
	if err != nil {
		return "", false, fmt.Errorf("get setting: %w", err)
	}
	return m.Value, ok, nil
}

func (r *SettingRepo) Set(ctx context.Context, key, value string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&SettingModel{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}
