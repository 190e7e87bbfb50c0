package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.FXRateRepository = (*FXRateRepo)(nil)

// FXRateRepo implementación de FXRateRepository sobre PostgreSQL. La tabla
// fx_rates es append-only con una columna position (bigserial): el orden de
// confirmación lo asigna la base, así dos escrituras admin concurrentes nunca
// se pierden y la vigente es siempre la de mayor position.
type FXRateRepo struct {
	q Querier
}

// NewFXRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFXRateRepository(q Querier) *FXRateRepo {
	return &FXRateRepo{q: q}
}

// GetCurrent devuelve la tasa vigente del tenant (history[0]).
func (r *FXRateRepo) GetCurrent(ctx context.Context, s entity.ActorSession) (*entity.FXRate, error) {
	if err := authz.Check(s, authz.ReadFXRate, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, rate, updated_by, updated_at
		FROM fx_rates WHERE tenant_id = $1 ORDER BY position DESC LIMIT 1`
	var fx entity.FXRate
	err := r.q.QueryRow(ctx, query, s.TenantID).Scan(
		&fx.ID, &fx.TenantID, &fx.Rate, &fx.UpdatedBy, &fx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get current fx rate", err)
	}
	return &fx, nil
}

// GetHistory devuelve el historial completo, del más reciente al más antiguo.
func (r *FXRateRepo) GetHistory(ctx context.Context, s entity.ActorSession) ([]*entity.FXRate, error) {
	if err := authz.Check(s, authz.ReadFXRate, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, rate, updated_by, updated_at
		FROM fx_rates WHERE tenant_id = $1 ORDER BY position DESC`
	rows, err := r.q.Query(ctx, query, s.TenantID)
	if err != nil {
		return nil, storageErr("list fx history", err)
	}
	defer rows.Close()
	var list []*entity.FXRate
	for rows.Next() {
		var fx entity.FXRate
		if err := rows.Scan(&fx.ID, &fx.TenantID, &fx.Rate, &fx.UpdatedBy, &fx.UpdatedAt); err != nil {
			return nil, storageErr("scan fx rate", err)
		}
		list = append(list, &fx)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list fx history", err)
	}
	return list, nil
}

// UpdateRate es el único mutador. Rechaza tasas no positivas con
// ErrInvalidInput, autoriza (solo admin) y agrega el registro al historial.
// El INSERT append-only no pisa filas existentes: el historial solo crece.
func (r *FXRateRepo) UpdateRate(ctx context.Context, s entity.ActorSession, rate decimal.Decimal) (*entity.FXRate, error) {
	if !entity.ValidRate(rate) {
		return nil, domain.ErrInvalidInput
	}
	if err := authz.Check(s, authz.WriteFXRate, s.TenantID); err != nil {
		return nil, err
	}
	fx := entity.FXRate{
		ID:        uuid.New().String(),
		TenantID:  s.TenantID,
		Rate:      rate,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: s.Name,
	}
	query := `
		INSERT INTO fx_rates (id, tenant_id, rate, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, fx.ID, fx.TenantID, fx.Rate, fx.UpdatedBy, fx.UpdatedAt)
	if err != nil {
		return nil, storageErr("insert fx rate", err)
	}
	return &fx, nil
}
