package entity

import (
	"time"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus es el estado de un pedido. Enumeración cerrada: toda decisión
// sobre estados (tabla de transiciones, gating de roles, mapeo HTTP) debe
// cubrir exactamente estos valores.
type OrderStatus string

const (
	OrderDraft               OrderStatus = "draft"
	OrderPendienteValidacion OrderStatus = "pendiente_validacion"
	OrderConfirmado          OrderStatus = "confirmado"
	OrderEnPreparacion       OrderStatus = "en_preparacion"
	OrderEnviado             OrderStatus = "enviado"
	OrderEntregado           OrderStatus = "entregado"
	OrderCancelado           OrderStatus = "cancelado"
)

// IsValid verifica que el estado pertenezca a la enumeración.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderDraft, OrderPendienteValidacion, OrderConfirmado,
		OrderEnPreparacion, OrderEnviado, OrderEntregado, OrderCancelado:
		return true
	}
	return false
}

// String devuelve la representación textual del estado.
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal indica si el estado no admite más transiciones.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderEntregado || s == OrderCancelado
}

// CanTransitionTo verifica la legalidad de la transición según la tabla del
// ciclo de vida. No considera roles: ese gating vive en el paquete authz.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderDraft:
		return target == OrderPendienteValidacion || target == OrderCancelado
	case OrderPendienteValidacion:
		return target == OrderConfirmado || target == OrderDraft || target == OrderCancelado
	case OrderConfirmado:
		return target == OrderEnPreparacion || target == OrderCancelado
	case OrderEnPreparacion:
		return target == OrderEnviado || target == OrderCancelado
	case OrderEnviado:
		return target == OrderEntregado
	case OrderEntregado, OrderCancelado:
		return false // estados terminales
	}
	return false
}

// OrderItem es una línea de pedido. Pertenece exclusivamente a su pedido:
// ninguna línea sobrevive al pedido ni se comparte entre dos pedidos.
type OrderItem struct {
	ID          string
	ProductID   string
	ProductName string
	QuantityKg  decimal.Decimal
	UnitPrice   decimal.Decimal // por kg, al momento de crear el pedido
	Amount      decimal.Decimal // QuantityKg * UnitPrice
}

// NewOrderItem construye una línea validada.
func NewOrderItem(productID, productName string, quantityKg, unitPrice decimal.Decimal) (OrderItem, error) {
	if productID == "" || productName == "" {
		return OrderItem{}, domain.ErrInvalidInput
	}
	if !quantityKg.IsPositive() {
		return OrderItem{}, domain.ErrInvalidInput
	}
	if unitPrice.IsNegative() {
		return OrderItem{}, domain.ErrInvalidInput
	}
	return OrderItem{
		ID:          uuid.New().String(),
		ProductID:   productID,
		ProductName: productName,
		QuantityKg:  quantityKg,
		UnitPrice:   unitPrice,
		Amount:      quantityKg.Mul(unitPrice),
	}, nil
}

// Order representa un pedido de productos de cobre de un cliente.
// Nace en draft; toda mutación de Status pasa por la máquina de estados
// (CanTransitionTo + authz). LastSaved se actualiza junto con Status en la
// misma escritura, nunca por separado.
type Order struct {
	Reference string // identificador de negocio, único por tenant
	TenantID  string
	ClientID  string
	Items     []OrderItem
	Status    OrderStatus
	Total     decimal.Decimal
	LastSaved *time.Time // nil hasta la primera transición confirmada
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder construye un pedido en draft con sus líneas. Requiere al menos
// una línea y un cliente.
func NewOrder(tenantID, clientID string, items []OrderItem) (*Order, error) {
	if tenantID == "" || clientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	now := time.Now()
	return &Order{
		Reference: "PED-" + uuid.New().String()[:8],
		TenantID:  tenantID,
		ClientID:  clientID,
		Items:     items,
		Status:    OrderDraft,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
