package memory

import (
	"context"
	"sort"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	st *Store
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(st *Store) *CustomerRepo {
	return &CustomerRepo{st: st}
}

// Create persiste un nuevo cliente (solo admin/interno).
func (r *CustomerRepo) Create(ctx context.Context, s entity.ActorSession, customer *entity.Customer) error {
	if err := authz.Check(s, authz.WriteCustomer, customer.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, c := range r.st.customers {
		if c.TenantID == customer.TenantID && c.TaxID == customer.TaxID {
			return domain.ErrDuplicate
		}
	}
	r.st.customers[customer.ID] = *customer
	return nil
}

// GetByID obtiene un cliente del tenant de la sesión. Cross-tenant: NotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Customer, error) {
	if err := authz.Check(s, authz.ReadCustomer, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	c, ok := r.st.customers[id]
	if !ok || c.TenantID != s.TenantID {
		return nil, domain.ErrNotFound
	}
	out := c
	return &out, nil
}

// List lista clientes del tenant ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Customer, error) {
	if err := authz.Check(s, authz.ReadCustomer, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var all []*entity.Customer
	for _, c := range r.st.customers {
		if c.TenantID == s.TenantID {
			cp := c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

// Update actualiza un cliente existente (solo admin/interno).
func (r *CustomerRepo) Update(ctx context.Context, s entity.ActorSession, customer *entity.Customer) error {
	if err := authz.Check(s, authz.WriteCustomer, customer.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur, ok := r.st.customers[customer.ID]
	if !ok || cur.TenantID != customer.TenantID {
		return domain.ErrNotFound
	}
	r.st.customers[customer.ID] = *customer
	return nil
}

// Deactivate marca un cliente como inactivo. No hay borrado físico.
func (r *CustomerRepo) Deactivate(ctx context.Context, s entity.ActorSession, id string) error {
	if err := authz.Check(s, authz.WriteCustomer, s.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	c, ok := r.st.customers[id]
	if !ok || c.TenantID != s.TenantID {
		return domain.ErrNotFound
	}
	c.Status = entity.CustomerInactive
	c.UpdatedAt = nowUTC()
	r.st.customers[id] = c
	return nil
}
