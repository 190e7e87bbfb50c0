package repository

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// FXRateRepository define el puerto para la tasa de cambio. Invariantes:
//   - UpdateRate es el único mutador y es solo-admin; una tasa no positiva
//     falla con ErrInvalidInput antes de escribir nada.
//   - El historial es append-only, ordenado del más reciente al más antiguo.
//   - GetCurrent equivale siempre al primer elemento de GetHistory, incluso
//     bajo escrituras admin concurrentes (el backend serializa por registro;
//     ninguna escritura confirmada se pierde).
type FXRateRepository interface {
	GetCurrent(ctx context.Context, s entity.ActorSession) (*entity.FXRate, error)
	GetHistory(ctx context.Context, s entity.ActorSession) ([]*entity.FXRate, error)
	UpdateRate(ctx context.Context, s entity.ActorSession, rate decimal.Decimal) (*entity.FXRate, error)
}
