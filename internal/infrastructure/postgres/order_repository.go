package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL. Las líneas
// viven en order_line_items y pertenecen en exclusiva a su pedido. La
// transición de estado usa un compare-and-set sobre la fila del pedido
// (WHERE status = estado leído): si otra sesión confirmó entre la lectura y
// la escritura, el resultado es ErrConflict, nunca una transición perdida.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador. Requiere el pool (no un Querier)
// porque Create abre su propia transacción para pedido + líneas.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste pedido y líneas en una transacción. Una sesión cliente solo
// puede crear pedidos a nombre de su propio cliente.
func (r *OrderRepo) Create(ctx context.Context, s entity.ActorSession, order *entity.Order) error {
	if err := authz.Check(s, authz.CreateOrder, order.TenantID); err != nil {
		return err
	}
	if s.Role == entity.RoleCliente && order.ClientID != s.ID {
		return domain.ErrUnauthorized
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO orders (reference, tenant_id, client_id, status, total, last_saved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.Exec(ctx, query,
		order.Reference, order.TenantID, order.ClientID, order.Status.String(),
		order.Total, order.LastSaved, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert order", err)
	}
	for _, it := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_line_items (id, order_reference, tenant_id, product_id, product_name, quantity_kg, unit_price, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, order.Reference, order.TenantID, it.ProductID, it.ProductName,
			it.QuantityKg, it.UnitPrice, it.Amount,
		)
		if err != nil {
			return storageErr("insert order line", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return storageErr("commit transaction", err)
	}
	return nil
}

// GetByReference obtiene un pedido con sus líneas. Una sesión cliente solo ve
// sus propios pedidos.
func (r *OrderRepo) GetByReference(ctx context.Context, s entity.ActorSession, reference string) (*entity.Order, error) {
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	ord, err := r.fetch(ctx, s.TenantID, reference)
	if err != nil {
		return nil, err
	}
	if s.Role == entity.RoleCliente && ord.ClientID != s.ID {
		return nil, domain.ErrUnauthorized
	}
	return ord, nil
}

// List lista pedidos del tenant, más recientes primero. Para una sesión
// cliente equivale a listar solo sus propios pedidos.
func (r *OrderRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Order, error) {
	if s.Role == entity.RoleCliente {
		return r.ListByClient(ctx, s, s.ID, limit, offset)
	}
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	return r.listWhere(ctx, s.TenantID, "", limit, offset)
}

// ListByClient lista pedidos de un cliente específico del tenant.
func (r *OrderRepo) ListByClient(ctx context.Context, s entity.ActorSession, clientID string, limit, offset int) ([]*entity.Order, error) {
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	if s.Role == entity.RoleCliente && clientID != s.ID {
		return nil, domain.ErrUnauthorized
	}
	return r.listWhere(ctx, s.TenantID, clientID, limit, offset)
}

// Transition lee el estado actual, valida tabla y gating, y escribe con
// compare-and-set: Status y last_saved cambian juntos o no cambia nada.
func (r *OrderRepo) Transition(ctx context.Context, s entity.ActorSession, reference string, target entity.OrderStatus) (*entity.Order, error) {
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	if !target.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	var fromStr, clientID string
	err := r.pool.QueryRow(ctx, `
		SELECT status, client_id FROM orders WHERE reference = $1 AND tenant_id = $2`,
		reference, s.TenantID,
	).Scan(&fromStr, &clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get order status", err)
	}
	if s.Role == entity.RoleCliente && clientID != s.ID {
		return nil, domain.ErrUnauthorized
	}
	from := entity.OrderStatus(fromStr)
	if !from.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition
	}
	if err := authz.CheckTransition(s, from, target); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $1, last_saved = $2, updated_at = $2
		WHERE reference = $3 AND tenant_id = $4 AND status = $5`,
		target.String(), now, reference, s.TenantID, from.String(),
	)
	if err != nil {
		return nil, storageErr("transition order", err)
	}
	if tag.RowsAffected() == 0 {
		// La fila existía con otro estado: otra sesión ganó la carrera.
		return nil, domain.ErrConflict
	}
	return r.fetch(ctx, s.TenantID, reference)
}

// fetch lee un pedido del tenant con sus líneas.
func (r *OrderRepo) fetch(ctx context.Context, tenantID, reference string) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT reference, tenant_id, client_id, status, total, last_saved, created_at, updated_at
		FROM orders WHERE reference = $1 AND tenant_id = $2`,
		reference, tenantID,
	).Scan(&o.Reference, &o.TenantID, &o.ClientID, &status, &o.Total, &o.LastSaved, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get order", err)
	}
	o.Status = entity.OrderStatus(status)
	items, err := r.fetchItems(ctx, tenantID, reference)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) fetchItems(ctx context.Context, tenantID, reference string) ([]entity.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, product_name, quantity_kg, unit_price, amount
		FROM order_line_items WHERE order_reference = $1 AND tenant_id = $2 ORDER BY product_name`,
		reference, tenantID,
	)
	if err != nil {
		return nil, storageErr("list order lines", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.ProductName, &it.QuantityKg, &it.UnitPrice, &it.Amount); err != nil {
			return nil, storageErr("scan order line", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list order lines", err)
	}
	return items, nil
}

func (r *OrderRepo) listWhere(ctx context.Context, tenantID, clientID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT reference, tenant_id, client_id, status, total, last_saved, created_at, updated_at
		FROM orders WHERE tenant_id = $1 AND ($2 = '' OR client_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, tenantID, clientID, limit, offset)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.Reference, &o.TenantID, &o.ClientID, &status, &o.Total,
			&o.LastSaved, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, storageErr("scan order", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list orders", err)
	}
	for _, o := range list {
		items, err := r.fetchItems(ctx, tenantID, o.Reference)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}
