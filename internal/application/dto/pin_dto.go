package dto

import "time"

// SetPINRequest alta o cambio de PIN. Current se ignora si aún no hay PIN.
type SetPINRequest struct {
	Current string `json:"current"`
	PIN     string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

// VerifyPINRequest verificación del PIN.
type VerifyPINRequest struct {
	PIN string `json:"pin" validate:"required"`
}

// ConfirmationResponse token de confirmación para operaciones destructivas.
type ConfirmationResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PINStatusResponse indica si hay PIN configurado.
type PINStatusResponse struct {
	Configured bool `json:"configured"`
}
