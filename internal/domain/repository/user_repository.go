package repository

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// UserRepository define el puerto para cuentas de usuario. Lo consume el
// colaborador de autenticación (login/registro), no los repositorios de
// dominio: por eso sus métodos no reciben ActorSession.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// TenantRepository define el puerto de lectura de tenants. La resolución de
// tenant es estática hoy (un solo tenant), pero el contrato asume varios.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)
}
