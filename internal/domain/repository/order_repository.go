package repository

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order. Transition es
// la única vía de mutación del estado: valida la tabla del ciclo de vida y el
// gating por rol, y actualiza Status y LastSaved atómicamente (ambos cambian
// o ninguno). Una carrera detectada en la escritura produce ErrConflict,
// distinguible de ErrInvalidTransition para que el llamador pueda relecturar
// y reintentar.
type OrderRepository interface {
	Create(ctx context.Context, s entity.ActorSession, order *entity.Order) error
	GetByReference(ctx context.Context, s entity.ActorSession, reference string) (*entity.Order, error)
	List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Order, error)
	ListByClient(ctx context.Context, s entity.ActorSession, clientID string, limit, offset int) ([]*entity.Order, error)
	Transition(ctx context.Context, s entity.ActorSession, reference string, target entity.OrderStatus) (*entity.Order, error)
}
