package repository

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// No existe borrado físico: el ciclo de vida termina en Deactivate.
type CustomerRepository interface {
	Create(ctx context.Context, s entity.ActorSession, customer *entity.Customer) error
	GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Customer, error)
	List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, s entity.ActorSession, customer *entity.Customer) error
	Deactivate(ctx context.Context, s entity.ActorSession, id string) error
}

// DiscountTierRepository define el puerto para los tramos de descuento por
// volumen (datos de referencia).
type DiscountTierRepository interface {
	Create(ctx context.Context, s entity.ActorSession, tier *entity.DiscountTier) error
	GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.DiscountTier, error)
	List(ctx context.Context, s entity.ActorSession) ([]*entity.DiscountTier, error)
	Update(ctx context.Context, s entity.ActorSession, tier *entity.DiscountTier) error
}
