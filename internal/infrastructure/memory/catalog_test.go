package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

func productoDemo(tenantID, sku string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID: uuid.New().String(), TenantID: tenantID, SKU: sku,
		Name: "Barra de cobre 12mm", PricePerKg: decimal.RequireFromString("9.10"),
		StockKg: decimal.NewFromInt(3000), CreatedAt: now, UpdatedAt: now,
	}
}

func TestProduct_ClienteNoEscribeElCatalogo(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewProductRepository(st)
	ctx := context.Background()

	err := repo.Create(ctx, clienteSession(tenantID, "cliente-1"), productoDemo(tenantID, "CU-BAR-12"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// pero sí lee
	_, err = repo.List(ctx, clienteSession(tenantID, "cliente-1"), 20, 0)
	assert.NoError(t, err)
}

func TestProduct_SKUDuplicadoEnElTenant(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewProductRepository(st)
	ctx := context.Background()
	interno := internoSession(tenantID)

	require.NoError(t, repo.Create(ctx, interno, productoDemo(tenantID, "CU-BAR-12")))
	err := repo.Create(ctx, interno, productoDemo(tenantID, "CU-BAR-12"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_IDDeOtroTenantEsNotFound(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewProductRepository(st)
	ctx := context.Background()

	p := productoDemo(tenantID, "CU-BAR-12")
	require.NoError(t, repo.Create(ctx, internoSession(tenantID), p))

	_, err := repo.GetByID(ctx, internoSession("otro-tenant"), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_ListaPaginadaOrdenadaPorSKU(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st) // siembra CU-ALM-8 y CU-CAT-A
	repo := NewProductRepository(st)
	ctx := context.Background()
	interno := internoSession(tenantID)

	require.NoError(t, repo.Create(ctx, interno, productoDemo(tenantID, "CU-BAR-12")))

	pagina, err := repo.List(ctx, interno, 2, 0)
	require.NoError(t, err)
	require.Len(t, pagina, 2)
	assert.Equal(t, "CU-ALM-8", pagina[0].SKU)
	assert.Equal(t, "CU-BAR-12", pagina[1].SKU)

	resto, err := repo.List(ctx, interno, 2, 2)
	require.NoError(t, err)
	require.Len(t, resto, 1)
	assert.Equal(t, "CU-CAT-A", resto[0].SKU)
}

func TestDiscountTier_EscrituraSoloInterna(t *testing.T) {
	st := NewStore()
	tenantID := Seed(st)
	repo := NewDiscountTierRepository(st)
	ctx := context.Background()

	tier := &entity.DiscountTier{
		ID: uuid.New().String(), TenantID: tenantID, Name: "Industrial",
		MinKg: decimal.NewFromInt(20000), DiscountPct: decimal.NewFromInt(5),
	}
	err := repo.Create(ctx, clienteSession(tenantID, "cliente-1"), tier)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, repo.Create(ctx, adminSession(tenantID), tier))
	tiers, err := repo.List(ctx, clienteSession(tenantID, "cliente-1"))
	require.NoError(t, err)
	assert.Len(t, tiers, 2) // el sembrado + el nuevo
}
