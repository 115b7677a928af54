// Package pin implementa la confirmación por PIN compartido antes de operaciones destructivas.
// Es una confirmación de intención, no un control de acceso.
package pin

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	pkgjwt "github.com/hedelmia/pos-api/pkg/jwt"
	"github.com/hedelmia/pos-api/pkg/pinhash"
)

var pinFormat = regexp.MustCompile(`^[0-9]{4,8}$`)

// Config parámetros del token de confirmación.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Confirmation token emitido tras verificar el PIN.
type Confirmation struct {
	Token     string
	ExpiresAt time.Time
}

// Gate guarda el digest del PIN en los ajustes y emite tokens de confirmación.
type Gate struct {
	tx       ports.TxRunner
	settings repository.SettingRepository
	cfg      Config
	log      zerolog.Logger
}

// NewGate construye la compuerta.
func NewGate(tx ports.TxRunner, settings repository.SettingRepository, cfg Config, log zerolog.Logger) *Gate {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return &Gate{tx: tx, settings: settings, cfg: cfg, log: log}
}

// IsSet indica si ya hay un PIN configurado.
func (g *Gate) IsSet(ctx context.Context) (bool, error) {
	_, ok, err := g.settings.Get(ctx, entity.SettingPINHash)
	return ok, err
}

// SetPIN configura o cambia el PIN. Si ya existe uno, current debe coincidir.
func (g *Gate) SetPIN(ctx context.Context, current, next string) error {
	if !pinFormat.MatchString(next) {
		return fmt.Errorf("%w: el PIN debe tener de 4 a 8 dígitos", domain.ErrInvalidInput)
	}
	digest, err := pinhash.Hash(next)
	if err != nil {
		return err
	}
	err = g.tx.Run(ctx, func(repos repository.Repositories) error {
		stored, ok, err := repos.Settings.Get(ctx, entity.SettingPINHash)
		if err != nil {
			return err
		}
		if ok {
			match, err := pinhash.Verify(current, stored)
			if err != nil {
				return err
			}
			if !match {
				return domain.ErrPINInvalid
			}
		}
		return repos.Settings.Set(ctx, entity.SettingPINHash, digest)
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("cambio de PIN rechazado")
		return err
	}
	g.log.Info().Msg("PIN actualizado")
	return nil
}

// Verify compara pin con el digest almacenado y, si coincide, emite un token de confirmación.
func (g *Gate) Verify(ctx context.Context, pin string) (*Confirmation, error) {
	stored, ok, err := g.settings.Get(ctx, entity.SettingPINHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrPINNotSet
	}
	match, err := pinhash.Verify(pin, stored)
	if err != nil {
		return nil, err
	}
	if !match {
		g.log.Warn().Msg("PIN incorrecto")
		return nil, domain.ErrPINInvalid
	}
	tok, exp, err := pkgjwt.Generate(g.cfg.Secret, pkgjwt.ScopeConfirm, g.cfg.Issuer, g.cfg.TTL)
	if err != nil {
		return nil, err
	}
	return &Confirmation{Token: tok, ExpiresAt: exp}, nil
}

// ValidateToken verifica que el token sea de confirmación y esté vigente.
func (g *Gate) ValidateToken(token string) error {
	scope, err := pkgjwt.Parse(g.cfg.Secret, token)
	if err != nil || scope != pkgjwt.ScopeConfirm {
		return domain.ErrPINInvalid
	}
	return nil
}
