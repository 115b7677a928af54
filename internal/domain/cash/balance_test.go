package cash_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hedelmia/pos-api/internal/domain/cash"
	"github.com/hedelmia/pos-api/internal/domain/entity"
)

func mov(box, kind string, amount int64) *entity.CashMovement {
	return &entity.CashMovement{Box: box, Kind: kind, Amount: decimal.NewFromInt(amount)}
}

// Escenario: caja chica [entrada 500, salida 300, entrada 100] → saldo 300.
func TestBalance_CajaChica(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashBoxChica, entity.CashKindEntrada, 500),
		mov(entity.CashBoxChica, entity.CashKindSalida, 300),
		mov(entity.CashBoxChica, entity.CashKindEntrada, 100),
		mov(entity.CashBoxGrande, entity.CashKindEntrada, 9999),
	}
	assert.True(t, cash.Balance(entity.CashBoxChica, movs).Equal(decimal.NewFromInt(300)))
	assert.True(t, cash.Balance(entity.CashBoxGrande, movs).Equal(decimal.NewFromInt(9999)))
}

func TestBalance_SinMovimientos(t *testing.T) {
	assert.True(t, cash.Balance(entity.CashBoxChica, nil).IsZero())
}

func TestTotals(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashBoxGrande, entity.CashKindEntrada, 200),
		mov(entity.CashBoxGrande, entity.CashKindSalida, 50),
		mov(entity.CashBoxGrande, entity.CashKindEntrada, 25),
	}
	in, out := cash.Totals(entity.CashBoxGrande, movs)
	assert.Equal(t, "225", in.String())
	assert.Equal(t, "50", out.String())
}
