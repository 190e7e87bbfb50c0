package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

func orderFixture(t *testing.T) (*OrderRepo, string) {
	t.Helper()
	st := NewStore()
	tenantID := Seed(st)
	return NewOrderRepository(st), tenantID
}

func nuevoPedido(t *testing.T, tenantID, clientID string) *entity.Order {
	t.Helper()
	item, err := entity.NewOrderItem("prod-1", "Cátodo de cobre grado A",
		decimal.NewFromInt(1000), decimal.RequireFromString("9.45"))
	require.NoError(t, err)
	order, err := entity.NewOrder(tenantID, clientID, []entity.OrderItem{item})
	require.NoError(t, err)
	return order
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida completo
// ──────────────────────────────────────────────────────────────────────────────

func TestOrder_CicloDeVidaCompleto(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()
	cliente := clienteSession(tenantID, "cliente-1")
	interno := internoSession(tenantID)

	order := nuevoPedido(t, tenantID, "cliente-1")
	require.NoError(t, repo.Create(ctx, cliente, order))

	pasos := []struct {
		actor  entity.ActorSession
		target entity.OrderStatus
	}{
		{cliente, entity.OrderPendienteValidacion},
		{interno, entity.OrderConfirmado},
		{interno, entity.OrderEnPreparacion},
		{interno, entity.OrderEnviado},
		{interno, entity.OrderEntregado},
	}

	var anterior *time.Time
	for _, paso := range pasos {
		got, err := repo.Transition(ctx, paso.actor, order.Reference, paso.target)
		require.NoError(t, err, "transición a %s", paso.target)
		assert.Equal(t, paso.target, got.Status)
		require.NotNil(t, got.LastSaved, "toda transición confirmada sella LastSaved")
		if anterior != nil {
			assert.False(t, got.LastSaved.Before(*anterior),
				"LastSaved nunca retrocede")
		}
		anterior = got.LastSaved
	}

	// entregado es terminal: nada más avanza
	_, err := repo.Transition(ctx, interno, order.Reference, entity.OrderCancelado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrder_TransicionIlegalNoMutaNada(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()
	interno := internoSession(tenantID)

	order := nuevoPedido(t, tenantID, "cliente-1")
	require.NoError(t, repo.Create(ctx, interno, order))
	_, err := repo.Transition(ctx, interno, order.Reference, entity.OrderPendienteValidacion)
	require.NoError(t, err)
	_, err = repo.Transition(ctx, interno, order.Reference, entity.OrderConfirmado)
	require.NoError(t, err)

	// confirmado → draft no está en la tabla
	_, err = repo.Transition(ctx, interno, order.Reference, entity.OrderDraft)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := repo.GetByReference(ctx, interno, order.Reference)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmado, got.Status, "el rechazo deja el estado intacto")
}

func TestOrder_LegalidadSeEvaluaAntesQueElRol(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()
	cliente := clienteSession(tenantID, "cliente-1")

	order := nuevoPedido(t, tenantID, "cliente-1")
	require.NoError(t, repo.Create(ctx, cliente, order))

	// draft → entregado es ilegal en la tabla; aunque el rol tampoco podría,
	// el error reportado es el de legalidad
	_, err := repo.Transition(ctx, cliente, order.Reference, entity.OrderEntregado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrder_ClienteNoCancelaPedidoEnPreparacion(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()
	cliente := clienteSession(tenantID, "cliente-1")
	interno := internoSession(tenantID)

	order := nuevoPedido(t, tenantID, "cliente-1")
	require.NoError(t, repo.Create(ctx, cliente, order))
	for _, target := range []entity.OrderStatus{
		entity.OrderPendienteValidacion, entity.OrderConfirmado, entity.OrderEnPreparacion,
	} {
		_, err := repo.Transition(ctx, interno, order.Reference, target)
		require.NoError(t, err)
	}

	// la transición es legal (en_preparacion → cancelado) pero el rol no alcanza
	_, err := repo.Transition(ctx, cliente, order.Reference, entity.OrderCancelado)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := repo.GetByReference(ctx, interno, order.Reference)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderEnPreparacion, got.Status)
}

func TestOrder_EstadoDestinoDesconocidoEsEntradaInvalida(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()
	interno := internoSession(tenantID)

	order := nuevoPedido(t, tenantID, "cliente-1")
	require.NoError(t, repo.Create(ctx, interno, order))

	_, err := repo.Transition(ctx, interno, order.Reference, entity.OrderStatus("archivado"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento por tenant y por cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestOrder_OtroTenantNoVeElPedido(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()

	order := nuevoPedido(t, tenantID, "cliente-1")
	require.NoError(t, repo.Create(ctx, internoSession(tenantID), order))

	// misma referencia, otro tenant: el aislamiento no revela la existencia
	_, err := repo.GetByReference(ctx, adminSession("otro-tenant"), order.Reference)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrder_ClienteSoloVeSusPedidos(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()
	interno := internoSession(tenantID)

	propio := nuevoPedido(t, tenantID, "cliente-1")
	ajeno := nuevoPedido(t, tenantID, "cliente-2")
	require.NoError(t, repo.Create(ctx, interno, propio))
	require.NoError(t, repo.Create(ctx, interno, ajeno))

	cliente := clienteSession(tenantID, "cliente-1")
	lista, err := repo.List(ctx, cliente, 20, 0)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, propio.Reference, lista[0].Reference)

	_, err = repo.GetByReference(ctx, cliente, ajeno.Reference)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = repo.Transition(ctx, cliente, ajeno.Reference, entity.OrderPendienteValidacion)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrder_ClienteNoCreaPedidoAjeno(t *testing.T) {
	repo, tenantID := orderFixture(t)
	ctx := context.Background()

	order := nuevoPedido(t, tenantID, "cliente-2")
	err := repo.Create(ctx, clienteSession(tenantID, "cliente-1"), order)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
