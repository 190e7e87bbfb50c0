package usecase

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase casos de uso para pedidos. Resuelve precios del catálogo al
// crear, aplica el tramo de descuento por volumen que corresponda y delega la
// máquina de estados al repositorio (Transition).
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	tiers     repository.DiscountTierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository,
	customers repository.CustomerRepository, tiers repository.DiscountTierRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, customers: customers, tiers: tiers}
}

// Create crea un pedido en draft. Una sesión cliente solo crea pedidos a su
// propio nombre; interno/admin indican el cliente. El cliente debe existir y
// estar activo. El precio unitario se toma del catálogo en este momento y
// queda congelado en la línea.
func (uc *OrderUseCase) Create(ctx context.Context, s entity.ActorSession, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	clientID := in.ClientID
	if s.Role == entity.RoleCliente {
		if clientID != "" && clientID != s.ID {
			return nil, domain.ErrUnauthorized
		}
		clientID = s.ID
	}
	if clientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(ctx, s, clientID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	totalKg := decimal.Zero
	for _, req := range in.Items {
		product, err := uc.products.GetByID(ctx, s, req.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := entity.NewOrderItem(product.ID, product.Name, req.QuantityKg, product.PricePerKg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		totalKg = totalKg.Add(req.QuantityKg)
	}
	order, err := entity.NewOrder(s.TenantID, clientID, items)
	if err != nil {
		return nil, err
	}
	if pct, err := uc.volumeDiscount(ctx, s, totalKg); err != nil {
		return nil, err
	} else if pct.IsPositive() {
		hundred := decimal.NewFromInt(100)
		order.Total = order.Total.Mul(hundred.Sub(pct)).Div(hundred).Round(2)
	}
	if err := uc.orders.Create(ctx, s, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// volumeDiscount devuelve el porcentaje del tramo más alto alcanzado por
// totalKg, o cero si ningún tramo aplica.
func (uc *OrderUseCase) volumeDiscount(ctx context.Context, s entity.ActorSession, totalKg decimal.Decimal) (decimal.Decimal, error) {
	tiers, err := uc.tiers.List(ctx, s)
	if err != nil {
		return decimal.Zero, err
	}
	best := decimal.Zero
	bestMin := decimal.Zero
	for _, t := range tiers {
		if totalKg.GreaterThanOrEqual(t.MinKg) && t.MinKg.GreaterThanOrEqual(bestMin) {
			best = t.DiscountPct
			bestMin = t.MinKg
		}
	}
	return best, nil
}

// GetByReference obtiene un pedido por su referencia de negocio.
func (uc *OrderUseCase) GetByReference(ctx context.Context, s entity.ActorSession, reference string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByReference(ctx, s, reference)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos del tenant. Para una sesión cliente el repositorio
// restringe el resultado a sus propios pedidos.
func (uc *OrderUseCase) List(ctx context.Context, s entity.ActorSession, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orders.List(ctx, s, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, page), nil
}

// ListByClient lista los pedidos de un cliente concreto.
func (uc *OrderUseCase) ListByClient(ctx context.Context, s entity.ActorSession, clientID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orders.ListByClient(ctx, s, clientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, page), nil
}

// Transition solicita el cambio de estado de un pedido.
func (uc *OrderUseCase) Transition(ctx context.Context, s entity.ActorSession, reference string, in dto.TransitionRequest) (*dto.OrderResponse, error) {
	target := entity.OrderStatus(in.Target)
	order, err := uc.orders.Transition(ctx, s, reference, target)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderListResponse(orders []*entity.Order, page dto.PageRequest) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			QuantityKg:  it.QuantityKg,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return &dto.OrderResponse{
		Reference: o.Reference,
		TenantID:  o.TenantID,
		ClientID:  o.ClientID,
		Status:    o.Status.String(),
		Total:     o.Total,
		Items:     items,
		LastSaved: o.LastSaved,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
