package memory

import (
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed carga datos de demostración para el backend en memoria: un tenant,
// usuarios de cada rol (password "demo1234"), catálogo base, un cliente y
// una tasa de cambio inicial. Devuelve el ID del tenant sembrado.
func Seed(st *Store) string {
	now := nowUTC()
	tenantID := uuid.New().String()
	st.tenants[tenantID] = entity.Tenant{
		ID: tenantID, Name: "Cobre Pro Demo", Slug: "cobrepro",
		CreatedAt: now, UpdatedAt: now,
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)

	clienteID := uuid.New().String()
	st.customers[clienteID] = entity.Customer{
		ID: clienteID, TenantID: tenantID, Name: "Metalúrgica Andina S.A.",
		TaxID: "900123456-7", Email: "compras@metandina.example",
		Status: entity.CustomerActive, CreatedAt: now, UpdatedAt: now,
	}

	usuarios := []entity.User{
		{ID: uuid.New().String(), TenantID: tenantID, Email: "admin@cobrepro.example",
			Name: "Admin Demo", Role: entity.RoleAdmin},
		{ID: uuid.New().String(), TenantID: tenantID, Email: "ventas@cobrepro.example",
			Name: "Ventas Demo", Role: entity.RoleInterno},
		{ID: uuid.New().String(), TenantID: tenantID, Email: "cliente@metandina.example",
			Name: "Cliente Demo", Role: entity.RoleCliente, CustomerID: clienteID},
	}
	for _, u := range usuarios {
		u.PasswordHash = string(hash)
		u.Status = "active"
		u.CreatedAt = now
		u.UpdatedAt = now
		st.users[u.ID] = u
	}

	catID := uuid.New().String()
	st.categories[catID] = entity.Category{
		ID: catID, TenantID: tenantID, Name: "Cátodos", Code: "CAT",
		CreatedAt: now, UpdatedAt: now,
	}
	productos := []entity.Product{
		{ID: uuid.New().String(), TenantID: tenantID, CategoryID: catID,
			SKU: "CU-CAT-A", Name: "Cátodo de cobre grado A",
			PricePerKg: decimal.RequireFromString("9.45"), StockKg: decimal.NewFromInt(25000)},
		{ID: uuid.New().String(), TenantID: tenantID, CategoryID: catID,
			SKU: "CU-ALM-8", Name: "Alambrón de cobre 8mm",
			PricePerKg: decimal.RequireFromString("9.80"), StockKg: decimal.NewFromInt(12000)},
	}
	for _, p := range productos {
		p.CreatedAt = now
		p.UpdatedAt = now
		st.products[p.ID] = p
	}

	tierID := uuid.New().String()
	st.tiers[tierID] = entity.DiscountTier{
		ID: tierID, TenantID: tenantID, Name: "Mayorista",
		MinKg: decimal.NewFromInt(5000), DiscountPct: decimal.NewFromInt(3),
		CreatedAt: now, UpdatedAt: now,
	}

	st.fx[tenantID] = &fxRecord{history: []entity.FXRate{{
		ID: uuid.New().String(), TenantID: tenantID,
		Rate: decimal.RequireFromString("4100.50"), UpdatedAt: now, UpdatedBy: "seed",
	}}}

	return tenantID
}
