package memory

import (
	"context"
	"sort"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository. Cada pedido tiene
// su propio mutex: las transiciones de un mismo pedido se serializan entre
// sí sin bloquear al resto.
type OrderRepo struct {
	st *Store
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(st *Store) *OrderRepo {
	return &OrderRepo{st: st}
}

// Create persiste un pedido nuevo. Una sesión cliente solo puede crear
// pedidos a nombre de su propio cliente.
func (r *OrderRepo) Create(ctx context.Context, s entity.ActorSession, order *entity.Order) error {
	if err := authz.Check(s, authz.CreateOrder, order.TenantID); err != nil {
		return err
	}
	if s.Role == entity.RoleCliente && order.ClientID != s.ID {
		return domain.ErrUnauthorized
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	key := orderKey(order.TenantID, order.Reference)
	if _, ok := r.st.orders[key]; ok {
		return domain.ErrDuplicate
	}
	r.st.orders[key] = &orderRecord{ord: *cloneOrder(*order)}
	return nil
}

// GetByReference obtiene un pedido del tenant de la sesión. Una sesión
// cliente solo ve sus propios pedidos.
func (r *OrderRepo) GetByReference(ctx context.Context, s entity.ActorSession, reference string) (*entity.Order, error) {
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	rec, err := r.record(s.TenantID, reference)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if s.Role == entity.RoleCliente && rec.ord.ClientID != s.ID {
		return nil, domain.ErrUnauthorized
	}
	return cloneOrder(rec.ord), nil
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
	return r.list(s.TenantID, "", limit, offset), nil
}

// ListByClient lista pedidos de un cliente específico del tenant.
func (r *OrderRepo) ListByClient(ctx context.Context, s entity.ActorSession, clientID string, limit, offset int) ([]*entity.Order, error) {
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	if s.Role == entity.RoleCliente && clientID != s.ID {
		return nil, domain.ErrUnauthorized
	}
	return r.list(s.TenantID, clientID, limit, offset), nil
}

// Transition muta el estado del pedido bajo el lock del registro: valida la
// tabla del ciclo de vida, luego el gating por rol, y actualiza Status y
// LastSaved juntos. Cualquier rechazo deja ambos campos intactos.
func (r *OrderRepo) Transition(ctx context.Context, s entity.ActorSession, reference string, target entity.OrderStatus) (*entity.Order, error) {
	if err := authz.Check(s, authz.ReadOrder, s.TenantID); err != nil {
		return nil, err
	}
	if !target.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	rec, err := r.record(s.TenantID, reference)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if s.Role == entity.RoleCliente && rec.ord.ClientID != s.ID {
		return nil, domain.ErrUnauthorized
	}
	from := rec.ord.Status
	if !from.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition
	}
	if err := authz.CheckTransition(s, from, target); err != nil {
		return nil, err
	}
	now := nowUTC()
	rec.ord.Status = target
	rec.ord.LastSaved = &now
	rec.ord.UpdatedAt = now
	return cloneOrder(rec.ord), nil
}

func (r *OrderRepo) record(tenantID, reference string) (*orderRecord, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	rec, ok := r.st.orders[orderKey(tenantID, reference)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (r *OrderRepo) list(tenantID, clientID string, limit, offset int) []*entity.Order {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var all []*entity.Order
	for _, rec := range r.st.orders {
		rec.mu.Lock()
		if rec.ord.TenantID == tenantID && (clientID == "" || rec.ord.ClientID == clientID) {
			all = append(all, cloneOrder(rec.ord))
		}
		rec.mu.Unlock()
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset)
}
