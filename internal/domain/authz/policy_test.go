package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

func sesion(role entity.Role) entity.ActorSession {
	return entity.ActorSession{ID: "actor-1", Name: "Actor", Role: role, TenantID: "tenant-1"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowed_EscrituraDeTasaEsSoloAdmin(t *testing.T) {
	assert.True(t, authz.Allowed(sesion(entity.RoleAdmin), authz.WriteFXRate, "tenant-1"))
	assert.False(t, authz.Allowed(sesion(entity.RoleInterno), authz.WriteFXRate, "tenant-1"))
	assert.False(t, authz.Allowed(sesion(entity.RoleCliente), authz.WriteFXRate, "tenant-1"))
}

func TestAllowed_LecturaAbiertaATodosLosRoles(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleInterno, entity.RoleCliente} {
		for _, a := range []authz.Action{
			authz.ReadProduct, authz.ReadCustomer, authz.ReadDiscountTier,
			authz.ReadFXRate, authz.ReadOrder,
		} {
			assert.True(t, authz.Allowed(sesion(role), a, "tenant-1"),
				"rol %s debería poder %s", role, a)
		}
	}
}

func TestAllowed_ClienteNoEscribeCatalogoNiClientes(t *testing.T) {
	s := sesion(entity.RoleCliente)
	assert.False(t, authz.Allowed(s, authz.WriteProduct, "tenant-1"))
	assert.False(t, authz.Allowed(s, authz.WriteCategory, "tenant-1"))
	assert.False(t, authz.Allowed(s, authz.WriteCustomer, "tenant-1"))
	assert.False(t, authz.Allowed(s, authz.WriteDiscountTier, "tenant-1"))
}

func TestAllowed_TenantDistintoSiempreDeniega(t *testing.T) {
	// el chequeo de tenant va antes que la tabla de roles: ni admin cruza
	s := sesion(entity.RoleAdmin)
	assert.False(t, authz.Allowed(s, authz.ReadProduct, "tenant-2"))
	assert.False(t, authz.Allowed(s, authz.WriteFXRate, "tenant-2"))
}

func TestAllowed_RolDesconocidoSeRechaza(t *testing.T) {
	s := entity.ActorSession{ID: "x", Role: entity.Role("superuser"), TenantID: "tenant-1"}
	assert.False(t, authz.Allowed(s, authz.ReadProduct, "tenant-1"))
}

func TestCheck_DenegacionEsUnauthorized(t *testing.T) {
	err := authz.Check(sesion(entity.RoleCliente), authz.WriteFXRate, "tenant-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NoError(t, authz.Check(sesion(entity.RoleAdmin), authz.WriteFXRate, "tenant-1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Gating por rol de transiciones de pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestTransitionAllowed_EnvioAValidacion(t *testing.T) {
	from, to := entity.OrderDraft, entity.OrderPendienteValidacion
	assert.True(t, authz.TransitionAllowed(sesion(entity.RoleCliente), from, to))
	assert.True(t, authz.TransitionAllowed(sesion(entity.RoleInterno), from, to))
	assert.False(t, authz.TransitionAllowed(sesion(entity.RoleAdmin), from, to))
}

func TestTransitionAllowed_AvancesOperativosSonInternos(t *testing.T) {
	casos := []struct{ from, to entity.OrderStatus }{
		{entity.OrderPendienteValidacion, entity.OrderConfirmado},
		{entity.OrderConfirmado, entity.OrderEnPreparacion},
		{entity.OrderEnPreparacion, entity.OrderEnviado},
		{entity.OrderEnviado, entity.OrderEntregado},
	}
	for _, c := range casos {
		assert.True(t, authz.TransitionAllowed(sesion(entity.RoleInterno), c.from, c.to),
			"interno %s → %s", c.from, c.to)
		assert.True(t, authz.TransitionAllowed(sesion(entity.RoleAdmin), c.from, c.to),
			"admin %s → %s", c.from, c.to)
		assert.False(t, authz.TransitionAllowed(sesion(entity.RoleCliente), c.from, c.to),
			"cliente %s → %s", c.from, c.to)
	}
}

func TestTransitionAllowed_CancelacionDeCliente(t *testing.T) {
	s := sesion(entity.RoleCliente)
	// el cliente solo cancela antes de la confirmación
	assert.True(t, authz.TransitionAllowed(s, entity.OrderDraft, entity.OrderCancelado))
	assert.True(t, authz.TransitionAllowed(s, entity.OrderPendienteValidacion, entity.OrderCancelado))
	assert.False(t, authz.TransitionAllowed(s, entity.OrderConfirmado, entity.OrderCancelado))
	assert.False(t, authz.TransitionAllowed(s, entity.OrderEnPreparacion, entity.OrderCancelado))
}

func TestTransitionAllowed_CancelacionInternaSinRestriccion(t *testing.T) {
	for _, from := range []entity.OrderStatus{
		entity.OrderDraft, entity.OrderPendienteValidacion,
		entity.OrderConfirmado, entity.OrderEnPreparacion,
	} {
		assert.True(t, authz.TransitionAllowed(sesion(entity.RoleAdmin), from, entity.OrderCancelado))
		assert.True(t, authz.TransitionAllowed(sesion(entity.RoleInterno), from, entity.OrderCancelado))
	}
}

func TestTransitionAllowed_RetraccionAValidacion(t *testing.T) {
	// pendiente_validacion → draft la puede pedir cualquier rol válido
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleInterno, entity.RoleCliente} {
		assert.True(t, authz.TransitionAllowed(sesion(role),
			entity.OrderPendienteValidacion, entity.OrderDraft))
	}
}
