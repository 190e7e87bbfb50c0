package repository

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product. Toda
// operación recibe la ActorSession explícita: la implementación autoriza
// antes de tocar el almacenamiento y nunca escribe parcialmente si deniega.
type ProductRepository interface {
	Create(ctx context.Context, s entity.ActorSession, product *entity.Product) error
	GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Product, error)
	List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, s entity.ActorSession, product *entity.Product) error
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, s entity.ActorSession, category *entity.Category) error
	GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Category, error)
	List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, s entity.ActorSession, category *entity.Category) error
}
