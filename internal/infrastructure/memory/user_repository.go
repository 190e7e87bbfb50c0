package memory

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.TenantRepository = (*TenantRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	st *Store
}

// NewUserRepository construye el adaptador.
func NewUserRepository(st *Store) *UserRepo {
	return &UserRepo{st: st}
}

// Create persiste un usuario nuevo. Email único global.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.st.users[user.ID] = *user
	return nil
}

// GetByEmail busca un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, u := range r.st.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByID busca un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	u, ok := r.st.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := u
	return &out, nil
}

// TenantRepo implementación en memoria de TenantRepository.
type TenantRepo struct {
	st *Store
}

// NewTenantRepository construye el adaptador.
func NewTenantRepository(st *Store) *TenantRepo {
	return &TenantRepo{st: st}
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	t, ok := r.st.tenants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := t
	return &out, nil
}

// GetBySlug obtiene un tenant por slug.
func (r *TenantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, t := range r.st.tenants {
		if t.Slug == slug {
			out := t
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}
