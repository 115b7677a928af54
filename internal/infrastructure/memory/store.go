// Package memory implementa el almacén en memoria (variante de navegador / kiosco sin base de datos).
// Opcionalmente persiste un snapshot JSON completo en disco después de cada unidad de trabajo.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

// data es el estado completo del almacén. Las listas conservan el orden de inserción.
type data struct {
	Products          []*entity.Product
	StockMovements    []*entity.StockMovement
	Materials         []*entity.RawMaterial
	MaterialMovements []*entity.MaterialMovement
	Customers         []*entity.Customer
	Sales             []*entity.Sale
	Cash              []*entity.CashMovement
	Notes             []*entity.PromissoryNote
	Credits           []*entity.Credit
	FridgeLoans       []*entity.FridgeLoan
	Settings          map[string]string
	Folios            map[string]int64
}

func newData() *data {
	return &data{Settings: map[string]string{}, Folios: map[string]int64{}}
}

// clone copia profunda del estado (vía JSON) para poder restaurarlo en un rollback.
func (d *data) clone() (*data, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out := newData()
	if err := json.Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Store almacén en memoria protegido por un mutex. Run retiene el mutex durante toda la
// unidad de trabajo, por lo que las unidades se serializan.
type Store struct {
	mu   sync.Mutex
	data *data
	path string
}

// NewStore crea un almacén vacío. Si path no está vacío y el archivo existe, carga el snapshot;
// cada Run exitoso vuelve a escribirlo.
func NewStore(path string) (*Store, error) {
	s := &Store{data: newData(), path: path}
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	loaded := newData()
	if err := json.Unmarshal(b, loaded); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	if loaded.Settings == nil {
		loaded.Settings = map[string]string{}
	}
	if loaded.Folios == nil {
		loaded.Folios = map[string]int64{}
	}
	s.data = loaded
	return s, nil
}

// Repositories devuelve repositorios para lecturas fuera de una unidad de trabajo.
// Cada llamada toma el mutex por su cuenta.
func (s *Store) Repositories() repository.Repositories {
	return s.repos(false)
}

// Run ejecuta fn con el mutex tomado. Si fn falla (o falla el guardado del snapshot)
// el estado vuelve a la copia tomada antes de empezar.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	backup, err := s.data.clone()
	if err != nil {
		return fmt.Errorf("snapshot de transacción: %w", err)
	}
	if err := fn(s.repos(true)); err != nil {
		s.data = backup
		return err
	}
	if err := s.save(); err != nil {
		s.data = backup
		return err
	}
	return nil
}

// save escribe el snapshot de forma atómica (archivo temporal + rename). Requiere el mutex.
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("crear snapshot: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}

func (s *Store) repos(inTx bool) repository.Repositories {
	b := base{s: s, inTx: inTx}
	return repository.Repositories{
		Products:          &ProductRepo{b},
		StockMovements:    &StockMovementRepo{b},
		Materials:         &RawMaterialRepo{b},
		MaterialMovements: &MaterialMovementRepo{b},
		Customers:         &CustomerRepo{b},
		Sales:             &SaleRepo{b},
		Cash:              &CashMovementRepo{b},
		Notes:             &PromissoryNoteRepo{b},
		Credits:           &CreditRepo{b},
		FridgeLoans:       &FridgeLoanRepo{b},
		Settings:          &SettingRepo{b},
	}
}

// base da acceso al estado. Dentro de Run el mutex ya está tomado.
type base struct {
	s    *Store
	inTx bool
}

func (b base) do(fn func(d *data) error) error {
	if !b.inTx {
		b.s.mu.Lock()
		defer b.s.mu.Unlock()
	}
	return fn(b.s.data)
}
