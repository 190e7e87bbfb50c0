package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

func fxFixture(t *testing.T) (*FXRateRepo, string) {
	t.Helper()
	st := NewStore()
	tenantID := Seed(st)
	return NewFXRateRepository(st), tenantID
}

func adminSession(tenantID string) entity.ActorSession {
	return entity.ActorSession{ID: "admin-1", Name: "Admin", Role: entity.RoleAdmin, TenantID: tenantID}
}

func internoSession(tenantID string) entity.ActorSession {
	return entity.ActorSession{ID: "interno-1", Name: "Ventas", Role: entity.RoleInterno, TenantID: tenantID}
}

func clienteSession(tenantID, customerID string) entity.ActorSession {
	return entity.ActorSession{ID: customerID, Name: "Cliente", Role: entity.RoleCliente, TenantID: tenantID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tasa de cambio
// ──────────────────────────────────────────────────────────────────────────────

func TestFXRate_EscrituraDeAdminQuedaVigente(t *testing.T) {
	repo, tenantID := fxFixture(t)
	ctx := context.Background()
	admin := adminSession(tenantID)

	nueva, err := repo.UpdateRate(ctx, admin, decimal.RequireFromString("4250.75"))
	require.NoError(t, err)
	assert.Equal(t, "Admin", nueva.UpdatedBy)

	current, err := repo.GetCurrent(ctx, admin)
	require.NoError(t, err)
	assert.True(t, current.Rate.Equal(decimal.RequireFromString("4250.75")))

	history, err := repo.GetHistory(ctx, admin)
	require.NoError(t, err)
	require.Len(t, history, 2, "la escritura se antepone, nunca reemplaza")
	assert.Equal(t, current.ID, history[0].ID, "la vigente es siempre history[0]")
}

func TestFXRate_EscrituraDeNoAdminDeniegaSinTocarHistorial(t *testing.T) {
	repo, tenantID := fxFixture(t)
	ctx := context.Background()

	antes, err := repo.GetHistory(ctx, adminSession(tenantID))
	require.NoError(t, err)

	for _, s := range []entity.ActorSession{
		internoSession(tenantID),
		clienteSession(tenantID, "cliente-1"),
	} {
		_, err := repo.UpdateRate(ctx, s, decimal.NewFromInt(4300))
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "rol %s", s.Role)
	}

	despues, err := repo.GetHistory(ctx, adminSession(tenantID))
	require.NoError(t, err)
	require.Len(t, despues, len(antes), "una denegación no escribe nada")
	assert.Equal(t, antes[0].ID, despues[0].ID)
}

func TestFXRate_TasaNoPositivaEsEntradaInvalida(t *testing.T) {
	repo, tenantID := fxFixture(t)
	ctx := context.Background()
	admin := adminSession(tenantID)

	antes, err := repo.GetHistory(ctx, admin)
	require.NoError(t, err)

	// la validación va antes que la autorización: también falla para admin
	_, err = repo.UpdateRate(ctx, admin, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = repo.UpdateRate(ctx, admin, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	despues, err := repo.GetHistory(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, despues, len(antes))
}

func TestFXRate_EscriturasConcurrentesNoSePierden(t *testing.T) {
	repo, tenantID := fxFixture(t)
	ctx := context.Background()
	admin := adminSession(tenantID)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpdateRate(ctx, admin, decimal.NewFromInt(int64(4000+i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history, err := repo.GetHistory(ctx, admin)
	require.NoError(t, err)
	// n escrituras + la tasa sembrada
	require.Len(t, history, n+1, "ninguna escritura confirmada se pierde")

	current, err := repo.GetCurrent(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, history[0].ID, current.ID, "la vigente coincide con history[0] tras la carrera")
}

func TestFXRate_TenantSinHistorialEsNotFound(t *testing.T) {
	st := NewStore()
	repo := NewFXRateRepository(st)
	ctx := context.Background()

	_, err := repo.GetCurrent(ctx, adminSession("tenant-vacio"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
