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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, s entity.ActorSession, category *entity.Category) error {
	if err := authz.Check(s, authz.WriteCategory, category.TenantID); err != nil {
		return err
	}
	query := `
		INSERT INTO categories (id, tenant_id, name, code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.TenantID, category.Name, category.Code,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría del tenant de la sesión.
func (r *CategoryRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Category, error) {
	if err := authz.Check(s, authz.ReadCategory, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, name, code, created_at, updated_at
		FROM categories WHERE id = $1 AND tenant_id = $2`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, s.TenantID).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Code, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get category", err)
	}
	return &c, nil
}

// List lista categorías del tenant ordenadas por código.
func (r *CategoryRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Category, error) {
	if err := authz.Check(s, authz.ReadCategory, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, name, code, created_at, updated_at
		FROM categories WHERE tenant_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, s.TenantID, limit, offset)
	if err != nil {
		return nil, storageErr("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Code, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, storageErr("scan category", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list categories", err)
	}
	return list, nil
}

// Update actualiza una categoría existente del tenant.
func (r *CategoryRepo) Update(ctx context.Context, s entity.ActorSession, category *entity.Category) error {
	if err := authz.Check(s, authz.WriteCategory, category.TenantID); err != nil {
		return err
	}
	query := `
		UPDATE categories SET name = $3, code = $4, updated_at = $5
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query,
		category.ID, category.TenantID, category.Name, category.Code, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("update category", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
