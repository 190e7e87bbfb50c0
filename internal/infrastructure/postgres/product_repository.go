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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Toda consulta está acotada al tenant de la sesión.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Autoriza antes de escribir.
func (r *ProductRepo) Create(ctx context.Context, s entity.ActorSession, product *entity.Product) error {
	if err := authz.Check(s, authz.WriteProduct, product.TenantID); err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, tenant_id, category_id, sku, name, description, price_per_kg, stock_kg, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.TenantID, product.CategoryID, product.SKU, product.Name,
		product.Description, product.PricePerKg, product.StockKg, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto del tenant de la sesión. Un ID de otro tenant
// resulta en ErrNotFound: el aislamiento nunca revela el registro.
func (r *ProductRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Product, error) {
	if err := authz.Check(s, authz.ReadProduct, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, COALESCE(category_id, ''), sku, name, description, price_per_kg, stock_kg, created_at, updated_at
		FROM products WHERE id = $1 AND tenant_id = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id, s.TenantID).Scan(
		&p.ID, &p.TenantID, &p.CategoryID, &p.SKU, &p.Name, &p.Description,
		&p.PricePerKg, &p.StockKg, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get product", err)
	}
	return &p, nil
}

// List lista productos del tenant con paginación, ordenados por SKU.
func (r *ProductRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Product, error) {
	if err := authz.Check(s, authz.ReadProduct, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, COALESCE(category_id, ''), sku, name, description, price_per_kg, stock_kg, created_at, updated_at
		FROM products WHERE tenant_id = $1 ORDER BY sku LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, s.TenantID, limit, offset)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.CategoryID, &p.SKU, &p.Name, &p.Description,
			&p.PricePerKg, &p.StockKg, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, storageErr("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list products", err)
	}
	return list, nil
}

// Update actualiza un producto existente del tenant.
func (r *ProductRepo) Update(ctx context.Context, s entity.ActorSession, product *entity.Product) error {
	if err := authz.Check(s, authz.WriteProduct, product.TenantID); err != nil {
		return err
	}
	query := `
		UPDATE products SET category_id = NULLIF($3, ''), name = $4, description = $5,
			price_per_kg = $6, stock_kg = $7, updated_at = $8
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.TenantID, product.CategoryID, product.Name, product.Description,
		product.PricePerKg, product.StockKg, product.UpdatedAt,
	)
	if err != nil {
		return storageErr("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
