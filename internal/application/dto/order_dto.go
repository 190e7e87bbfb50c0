package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de un pedido nuevo. El precio unitario se resuelve
// del catálogo en el momento de creación, no lo fija el llamador.
type OrderItemRequest struct {
	ProductID  string          `json:"product_id"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
}

// CreateOrderRequest alta de pedido. ClientID solo lo pueden indicar roles
// internos/admin; una sesión cliente siempre crea pedidos a su propio nombre.
type CreateOrderRequest struct {
	ClientID string             `json:"client_id"`
	Items    []OrderItemRequest `json:"items"`
}

// TransitionRequest solicitud de cambio de estado de un pedido.
type TransitionRequest struct {
	Target string `json:"target"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse representación pública de un pedido.
type OrderResponse struct {
	Reference string              `json:"reference"`
	TenantID  string              `json:"tenant_id"`
	ClientID  string              `json:"client_id"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	LastSaved *time.Time          `json:"last_saved,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
