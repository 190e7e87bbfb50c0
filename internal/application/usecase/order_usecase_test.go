package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/application/usecase"
	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/infrastructure/memory"
)

type fixture struct {
	orders    *usecase.OrderUseCase
	customers *usecase.CustomerUseCase
	tenantID  string
	productID string
	precio    decimal.Decimal
	clienteID string
}

// armarFixture levanta el backend en memoria con los datos de demo y resuelve
// los IDs sembrados que los tests necesitan.
func armarFixture(t *testing.T) fixture {
	t.Helper()
	st := memory.NewStore()
	tenantID := memory.Seed(st)

	productRepo := memory.NewProductRepository(st)
	customerRepo := memory.NewCustomerRepository(st)
	orderUC := usecase.NewOrderUseCase(
		memory.NewOrderRepository(st),
		productRepo,
		customerRepo,
		memory.NewDiscountTierRepository(st),
	)

	interno := entity.ActorSession{ID: "u-1", Name: "Ventas", Role: entity.RoleInterno, TenantID: tenantID}
	ctx := context.Background()

	productos, err := productRepo.List(ctx, interno, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, productos)

	clientes, err := customerRepo.List(ctx, interno, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, clientes)

	return fixture{
		orders:    orderUC,
		customers: usecase.NewCustomerUseCase(customerRepo),
		tenantID:  tenantID,
		productID: productos[0].ID,
		precio:    productos[0].PricePerKg,
		clienteID: clientes[0].ID,
	}
}

func (f fixture) interno() entity.ActorSession {
	return entity.ActorSession{ID: "u-1", Name: "Ventas", Role: entity.RoleInterno, TenantID: f.tenantID}
}

func (f fixture) cliente() entity.ActorSession {
	return entity.ActorSession{ID: f.clienteID, Name: "Cliente", Role: entity.RoleCliente, TenantID: f.tenantID}
}

func TestOrderCreate_CongelaPrecioDelCatalogo(t *testing.T) {
	f := armarFixture(t)
	ctx := context.Background()

	out, err := f.orders.Create(ctx, f.interno(), dto.CreateOrderRequest{
		ClientID: f.clienteID,
		Items: []dto.OrderItemRequest{
			{ProductID: f.productID, QuantityKg: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", out.Status)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].UnitPrice.Equal(f.precio),
		"el precio unitario viene del catálogo al crear")
	assert.True(t, out.Total.Equal(f.precio.Mul(decimal.NewFromInt(100))))
}

func TestOrderCreate_AplicaTramoDeDescuentoPorVolumen(t *testing.T) {
	f := armarFixture(t)
	ctx := context.Background()

	// la semilla trae "Mayorista": 3% a partir de 5000 kg
	out, err := f.orders.Create(ctx, f.interno(), dto.CreateOrderRequest{
		ClientID: f.clienteID,
		Items: []dto.OrderItemRequest{
			{ProductID: f.productID, QuantityKg: decimal.NewFromInt(5000)},
		},
	})
	require.NoError(t, err)

	bruto := f.precio.Mul(decimal.NewFromInt(5000))
	esperado := bruto.Mul(decimal.RequireFromString("0.97")).Round(2)
	assert.True(t, out.Total.Equal(esperado),
		"total %s, esperado %s con 3%% de descuento", out.Total, esperado)
}

func TestOrderCreate_ClienteSoloASuNombre(t *testing.T) {
	f := armarFixture(t)
	ctx := context.Background()

	// sin ClientID explícito, el pedido queda a nombre de la propia sesión
	out, err := f.orders.Create(ctx, f.cliente(), dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: f.productID, QuantityKg: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, f.clienteID, out.ClientID)

	// con un ClientID ajeno, se deniega
	_, err = f.orders.Create(ctx, f.cliente(), dto.CreateOrderRequest{
		ClientID: "otro-cliente",
		Items: []dto.OrderItemRequest{
			{ProductID: f.productID, QuantityKg: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderCreate_ClienteInactivoNoCompra(t *testing.T) {
	f := armarFixture(t)
	ctx := context.Background()

	require.NoError(t, f.customers.Deactivate(ctx, f.interno(), f.clienteID))

	_, err := f.orders.Create(ctx, f.interno(), dto.CreateOrderRequest{
		ClientID: f.clienteID,
		Items: []dto.OrderItemRequest{
			{ProductID: f.productID, QuantityKg: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ProductoInexistenteEsNotFound(t *testing.T) {
	f := armarFixture(t)
	ctx := context.Background()

	_, err := f.orders.Create(ctx, f.interno(), dto.CreateOrderRequest{
		ClientID: f.clienteID,
		Items: []dto.OrderItemRequest{
			{ProductID: "no-existe", QuantityKg: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderTransition_DestinoViajaAlRepositorio(t *testing.T) {
	f := armarFixture(t)
	ctx := context.Background()

	out, err := f.orders.Create(ctx, f.cliente(), dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: f.productID, QuantityKg: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	moved, err := f.orders.Transition(ctx, f.cliente(), out.Reference,
		dto.TransitionRequest{Target: "pendiente_validacion"})
	require.NoError(t, err)
	assert.Equal(t, "pendiente_validacion", moved.Status)
	assert.NotNil(t, moved.LastSaved)
}
