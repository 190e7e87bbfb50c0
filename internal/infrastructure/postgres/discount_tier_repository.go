package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.DiscountTierRepository = (*DiscountTierRepo)(nil)

// DiscountTierRepo implementación de DiscountTierRepository sobre PostgreSQL.
type DiscountTierRepo struct {
	q Querier
}

// NewDiscountTierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDiscountTierRepository(q Querier) *DiscountTierRepo {
	return &DiscountTierRepo{q: q}
}

// Create persiste un nuevo tramo de descuento.
func (r *DiscountTierRepo) Create(ctx context.Context, s entity.ActorSession, tier *entity.DiscountTier) error {
	if err := authz.Check(s, authz.WriteDiscountTier, tier.TenantID); err != nil {
		return err
	}
	query := `
		INSERT INTO discount_tiers (id, tenant_id, name, min_kg, discount_pct, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		tier.ID, tier.TenantID, tier.Name, tier.MinKg, tier.DiscountPct,
		tier.CreatedAt, tier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert discount tier", err)
	}
	return nil
}

// GetByID obtiene un tramo del tenant de la sesión.
func (r *DiscountTierRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.DiscountTier, error) {
	if err := authz.Check(s, authz.ReadDiscountTier, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, name, min_kg, discount_pct, created_at, updated_at
		FROM discount_tiers WHERE id = $1 AND tenant_id = $2`
	var t entity.DiscountTier
	err := r.q.QueryRow(ctx, query, id, s.TenantID).Scan(
		&t.ID, &t.TenantID, &t.Name, &t.MinKg, &t.DiscountPct, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get discount tier", err)
	}
	return &t, nil
}

// List lista los tramos del tenant ordenados por kilos mínimos ascendentes.
func (r *DiscountTierRepo) List(ctx context.Context, s entity.ActorSession) ([]*entity.DiscountTier, error) {
	if err := authz.Check(s, authz.ReadDiscountTier, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, name, min_kg, discount_pct, created_at, updated_at
		FROM discount_tiers WHERE tenant_id = $1 ORDER BY min_kg`
	rows, err := r.q.Query(ctx, query, s.TenantID)
	if err != nil {
		return nil, storageErr("list discount tiers", err)
	}
	defer rows.Close()
	var list []*entity.DiscountTier
	for rows.Next() {
		var t entity.DiscountTier
		if err := rows.Scan(&t.ID, &t.TenantID, &t.Name, &t.MinKg, &t.DiscountPct,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, storageErr("scan discount tier", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list discount tiers", err)
	}
	return list, nil
}

// Update actualiza un tramo existente del tenant.
func (r *DiscountTierRepo) Update(ctx context.Context, s entity.ActorSession, tier *entity.DiscountTier) error {
	if err := authz.Check(s, authz.WriteDiscountTier, tier.TenantID); err != nil {
		return err
	}
	query := `
		UPDATE discount_tiers SET name = $3, min_kg = $4, discount_pct = $5, updated_at = $6
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query,
		tier.ID, tier.TenantID, tier.Name, tier.MinKg, tier.DiscountPct, tier.UpdatedAt,
	)
	if err != nil {
		return storageErr("update discount tier", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
