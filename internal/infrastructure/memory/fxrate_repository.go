package memory

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ repository.FXRateRepository = (*FXRateRepo)(nil)

// FXRateRepo implementación en memoria de FXRateRepository. El historial de
// cada tenant tiene su propio mutex: escritor único por registro, y la tasa
// vigente es siempre history[0].
type FXRateRepo struct {
	st *Store
}

// NewFXRateRepository construye el adaptador.
func NewFXRateRepository(st *Store) *FXRateRepo {
	return &FXRateRepo{st: st}
}

// GetCurrent devuelve la tasa vigente del tenant.
func (r *FXRateRepo) GetCurrent(ctx context.Context, s entity.ActorSession) (*entity.FXRate, error) {
	if err := authz.Check(s, authz.ReadFXRate, s.TenantID); err != nil {
		return nil, err
	}
	rec := r.st.fxOf(s.TenantID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.history) == 0 {
		return nil, domain.ErrNotFound
	}
	out := rec.history[0]
	return &out, nil
}

// GetHistory devuelve el historial completo, del más reciente al más antiguo.
func (r *FXRateRepo) GetHistory(ctx context.Context, s entity.ActorSession) ([]*entity.FXRate, error) {
	if err := authz.Check(s, authz.ReadFXRate, s.TenantID); err != nil {
		return nil, err
	}
	rec := r.st.fxOf(s.TenantID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]*entity.FXRate, len(rec.history))
	for i := range rec.history {
		cp := rec.history[i]
		out[i] = &cp
	}
	return out, nil
}

// UpdateRate es el único mutador de la tasa. Rechaza tasas no positivas con
// ErrInvalidInput, autoriza (solo admin) y antepone el nuevo registro al
// historial, todo bajo el lock del registro: ninguna escritura confirmada se
// pierde y current == history[0] se cumple tras cada escritura.
func (r *FXRateRepo) UpdateRate(ctx context.Context, s entity.ActorSession, rate decimal.Decimal) (*entity.FXRate, error) {
	if !entity.ValidRate(rate) {
		return nil, domain.ErrInvalidInput
	}
	if err := authz.Check(s, authz.WriteFXRate, s.TenantID); err != nil {
		return nil, err
	}
	rec := r.st.fxOf(s.TenantID)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	nuevo := entity.FXRate{
		ID:        uuid.New().String(),
		TenantID:  s.TenantID,
		Rate:      rate,
		UpdatedAt: nowUTC(),
		UpdatedBy: s.Name,
	}
	rec.history = append([]entity.FXRate{nuevo}, rec.history...)
	out := nuevo
	return &out, nil
}
