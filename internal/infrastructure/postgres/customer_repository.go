package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente (solo admin/interno).
func (r *CustomerRepo) Create(ctx context.Context, s entity.ActorSession, customer *entity.Customer) error {
	if err := authz.Check(s, authz.WriteCustomer, customer.TenantID); err != nil {
		return err
	}
	query := `
		INSERT INTO customers (id, tenant_id, name, tax_id, email, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.TenantID, customer.Name, customer.TaxID, customer.Email,
		customer.Phone, customer.Status, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert customer", err)
	}
	return nil
}

// GetByID obtiene un cliente del tenant de la sesión. Cross-tenant: NotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Customer, error) {
	if err := authz.Check(s, authz.ReadCustomer, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, name, tax_id, email, phone, status, created_at, updated_at
		FROM customers WHERE id = $1 AND tenant_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, s.TenantID).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get customer", err)
	}
	return &c, nil
}

// List lista clientes del tenant con paginación, ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Customer, error) {
	if err := authz.Check(s, authz.ReadCustomer, s.TenantID); err != nil {
		return nil, err
	}
	query := `
		SELECT id, tenant_id, name, tax_id, email, phone, status, created_at, updated_at
		FROM customers WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, s.TenantID, limit, offset)
	if err != nil {
		return nil, storageErr("list customers", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.TaxID, &c.Email, &c.Phone,
			&c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, storageErr("scan customer", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list customers", err)
	}
	return list, nil
}

// Update actualiza un cliente existente (solo admin/interno).
func (r *CustomerRepo) Update(ctx context.Context, s entity.ActorSession, customer *entity.Customer) error {
	if err := authz.Check(s, authz.WriteCustomer, customer.TenantID); err != nil {
		return err
	}
	query := `
		UPDATE customers SET name = $3, tax_id = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query,
		customer.ID, customer.TenantID, customer.Name, customer.TaxID, customer.Email,
		customer.Phone, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca un cliente como inactivo. No hay borrado físico.
func (r *CustomerRepo) Deactivate(ctx context.Context, s entity.ActorSession, id string) error {
	if err := authz.Check(s, authz.WriteCustomer, s.TenantID); err != nil {
		return err
	}
	query := `
		UPDATE customers SET status = $3, updated_at = $4
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query, id, s.TenantID, entity.CustomerInactive, time.Now().UTC())
	if err != nil {
		return storageErr("deactivate customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
