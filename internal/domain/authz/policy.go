// Package authz contiene el predicado de autorización de la plataforma.
// Es una tabla cerrada: para extender permisos se agregan filas aquí,
// nunca chequeos ad-hoc en repositorios o handlers.
package authz

import (
	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// Action identifica una operación autorizable sobre una familia de entidades.
type Action string

const (
	ReadProduct       Action = "read_product"
	WriteProduct      Action = "write_product"
	ReadCategory      Action = "read_category"
	WriteCategory     Action = "write_category"
	ReadCustomer      Action = "read_customer"
	WriteCustomer     Action = "write_customer"
	ReadDiscountTier  Action = "read_discount_tier"
	WriteDiscountTier Action = "write_discount_tier"
	ReadFXRate        Action = "read_fx_rate"
	WriteFXRate       Action = "write_fx_rate"
	CreateOrder       Action = "create_order"
	ReadOrder         Action = "read_order"
)

// policy es la tabla de permisos por rol. El gating de transiciones de
// pedidos no vive aquí: ver TransitionAllowed.
var policy = map[Action]map[entity.Role]bool{
	ReadProduct:       {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
	WriteProduct:      {entity.RoleAdmin: true, entity.RoleInterno: true},
	ReadCategory:      {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
	WriteCategory:     {entity.RoleAdmin: true, entity.RoleInterno: true},
	ReadCustomer:      {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
	WriteCustomer:     {entity.RoleAdmin: true, entity.RoleInterno: true},
	ReadDiscountTier:  {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
	WriteDiscountTier: {entity.RoleAdmin: true, entity.RoleInterno: true},
	ReadFXRate:        {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
	WriteFXRate:       {entity.RoleAdmin: true},
	CreateOrder:       {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
	ReadOrder:         {entity.RoleAdmin: true, entity.RoleInterno: true, entity.RoleCliente: true},
}

// Allowed es el predicado puro de autorización. El chequeo de tenant se
// evalúa antes que la tabla de roles: una sesión de otro tenant siempre se
// deniega, sin importar el rol. Un rol desconocido se rechaza, no se asume.
func Allowed(s entity.ActorSession, a Action, resourceTenantID string) bool {
	if !s.Role.IsValid() {
		return false
	}
	if s.TenantID == "" || s.TenantID != resourceTenantID {
		return false
	}
	return policy[a][s.Role]
}

// Check traduce una denegación a ErrUnauthorized. Nunca produce el error de
// conectividad genérico: el llamador siempre puede distinguir "prohibido"
// de "inalcanzable".
func Check(s entity.ActorSession, a Action, resourceTenantID string) error {
	if !Allowed(s, a, resourceTenantID) {
		return domain.ErrUnauthorized
	}
	return nil
}

// TransitionAllowed decide si el rol de la sesión puede invocar la transición
// from→to. Asume que la legalidad de la transición ya fue verificada con
// OrderStatus.CanTransitionTo; aquí solo se evalúa el gating por rol:
//   - draft→pendiente_validacion: cliente o interno
//   - demás transiciones hacia adelante: interno o admin
//   - →cancelado: admin e interno siempre; cliente solo desde draft o
//     pendiente_validacion
//   - pendiente_validacion→draft (retracción): cualquier rol válido
func TransitionAllowed(s entity.ActorSession, from, to entity.OrderStatus) bool {
	if !s.Role.IsValid() {
		return false
	}
	switch to {
	case entity.OrderPendienteValidacion:
		return s.Role == entity.RoleCliente || s.Role == entity.RoleInterno
	case entity.OrderConfirmado, entity.OrderEnPreparacion, entity.OrderEnviado, entity.OrderEntregado:
		return s.Role == entity.RoleInterno || s.Role == entity.RoleAdmin
	case entity.OrderCancelado:
		if s.Role == entity.RoleAdmin || s.Role == entity.RoleInterno {
			return true
		}
		return s.Role == entity.RoleCliente &&
			(from == entity.OrderDraft || from == entity.OrderPendienteValidacion)
	case entity.OrderDraft:
		return true
	}
	return false
}

// CheckTransition traduce un gating denegado a ErrUnauthorized.
func CheckTransition(s entity.ActorSession, from, to entity.OrderStatus) error {
	if !TransitionAllowed(s, from, to) {
		return domain.ErrUnauthorized
	}
	return nil
}
