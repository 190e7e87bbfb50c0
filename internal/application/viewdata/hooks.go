package viewdata

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/application/usecase"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// Constructores de hooks por vista. Cada hook envuelve el caso de uso de
// lectura correspondiente; la página es fija por hook porque representa una
// vista concreta, no un endpoint genérico.

// NewProductsHook hook del listado de productos del catálogo.
func NewProductsHook(uc *usecase.ProductUseCase, page dto.PageRequest) *Hook[*dto.ProductListResponse] {
	return NewHook(func(ctx context.Context, s entity.ActorSession) (*dto.ProductListResponse, error) {
		return uc.List(ctx, s, page)
	})
}

// NewCustomersHook hook del listado de clientes.
func NewCustomersHook(uc *usecase.CustomerUseCase, page dto.PageRequest) *Hook[*dto.CustomerListResponse] {
	return NewHook(func(ctx context.Context, s entity.ActorSession) (*dto.CustomerListResponse, error) {
		return uc.List(ctx, s, page)
	})
}

// NewDiscountTiersHook hook de los tramos de descuento.
func NewDiscountTiersHook(uc *usecase.DiscountTierUseCase) *Hook[[]dto.DiscountTierResponse] {
	return NewHook(func(ctx context.Context, s entity.ActorSession) ([]dto.DiscountTierResponse, error) {
		return uc.List(ctx, s)
	})
}

// NewFXRateHook hook de la tasa de cambio vigente con su historial.
func NewFXRateHook(uc *usecase.FXRateUseCase) *Hook[*dto.FXRateHistoryResponse] {
	return NewHook(func(ctx context.Context, s entity.ActorSession) (*dto.FXRateHistoryResponse, error) {
		return uc.GetHistory(ctx, s)
	})
}

// NewOrdersHook hook del listado de pedidos. Para una sesión cliente el
// repositorio ya restringe a sus propios pedidos.
func NewOrdersHook(uc *usecase.OrderUseCase, page dto.PageRequest) *Hook[*dto.OrderListResponse] {
	return NewHook(func(ctx context.Context, s entity.ActorSession) (*dto.OrderListResponse, error) {
		return uc.List(ctx, s, page)
	})
}
