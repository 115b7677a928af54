package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hedelmia/pos-api/internal/domain"
)

func TestCode(t *testing.T) {
	cases := map[string]error{
		domain.CodeInsufficientStock:    domain.NewStockError("p1", 4, 3),
		domain.CodeCreditLimitExceeded:  &domain.CreditLimitError{CustomerID: "c1", Limit: decimal.NewFromInt(1)},
		domain.CodeNotFound:             domain.NotFound("producto", "p9"),
		domain.CodeEmptyCart:            domain.ErrEmptyCart,
		domain.CodeAmountExceedsBalance: domain.ErrAmountExceedsBalance,
		domain.CodeInvalidAmount:        fmt.Errorf("abono: %w", domain.ErrInvalidAmount),
		domain.CodePINInvalid:           domain.ErrPINInvalid,
		domain.CodePINNotSet:            domain.ErrPINNotSet,
		domain.CodeInternal:             errors.New("connection refused"),
	}
	for want, err := range cases {
		assert.Equal(t, want, domain.Code(err), "error %v", err)
	}
	assert.Equal(t, "", domain.Code(nil))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, domain.IsValidation(domain.ErrEmptyCart))
	assert.False(t, domain.IsValidation(errors.New("disk full")))
	assert.False(t, domain.IsValidation(nil))
}

func TestStockError_Mensaje(t *testing.T) {
	err := domain.NewStockError("fresa", 5, 2)
	assert.Contains(t, err.Error(), "fresa")
	assert.Contains(t, err.Error(), "disponible 2")
}
