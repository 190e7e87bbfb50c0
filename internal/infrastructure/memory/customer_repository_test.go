package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

func clienteDemo(tenantID, taxID string) *entity.Customer {
	now := time.Now()
	return &entity.Customer{
		ID: uuid.New().String(), TenantID: tenantID, Name: "Fundición del Sur Ltda.",
		TaxID: taxID, Email: "compras@fundisur.example",
		Status: entity.CustomerActive, CreatedAt: now, UpdatedAt: now,
	}
}

func TestCustomer_DeactivateConservaElRegistro(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewCustomerRepository(st)
	ctx := context.Background()
	interno := internoSession(tenantID)

	c := clienteDemo(tenantID, "901234567-8")
	require.NoError(t, repo.Create(ctx, interno, c))
	require.NoError(t, repo.Deactivate(ctx, interno, c.ID))

	got, err := repo.GetByID(ctx, interno, c.ID)
	require.NoError(t, err, "desactivar no borra: el registro sigue legible")
	assert.Equal(t, entity.CustomerInactive, got.Status)
	assert.False(t, got.IsActive())
}

func TestCustomer_ClienteNoDesactivaNiCrea(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewCustomerRepository(st)
	ctx := context.Background()
	cliente := clienteSession(tenantID, "cliente-1")

	err := repo.Create(ctx, cliente, clienteDemo(tenantID, "901234567-8"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = repo.Deactivate(ctx, cliente, "cualquiera")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCustomer_TaxIDDuplicadoEnElTenant(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewCustomerRepository(st)
	ctx := context.Background()
	interno := internoSession(tenantID)

	require.NoError(t, repo.Create(ctx, interno, clienteDemo(tenantID, "901234567-8")))
	err := repo.Create(ctx, interno, clienteDemo(tenantID, "901234567-8"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomer_CrossTenantEsNotFound(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewCustomerRepository(st)
	ctx := context.Background()

	c := clienteDemo(tenantID, "901234567-8")
	require.NoError(t, repo.Create(ctx, internoSession(tenantID), c))

	_, err := repo.GetByID(ctx, internoSession("otro-tenant"), c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
