package viewdata

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

var sesionDemo = entity.ActorSession{
	ID: "actor-1", Name: "Actor", Role: entity.RoleInterno, TenantID: "tenant-1",
}

func TestHook_RefreshCargaYLimpiaError(t *testing.T) {
	llamadas := 0
	h := NewHook(func(ctx context.Context, s entity.ActorSession) (int, error) {
		llamadas++
		if llamadas == 1 {
			return 0, errors.New("falla transitoria")
		}
		return 42, nil
	})

	err := h.Refresh(context.Background(), sesionDemo)
	require.Error(t, err)
	snap := h.Snapshot()
	assert.Error(t, snap.Err)
	assert.False(t, snap.Loading)

	require.NoError(t, h.Refresh(context.Background(), sesionDemo))
	snap = h.Snapshot()
	assert.Equal(t, 42, snap.Data)
	assert.NoError(t, snap.Err, "una carga exitosa limpia el error anterior")
}

func TestHook_ErrorConservaDatosPrevios(t *testing.T) {
	fallar := false
	h := NewHook(func(ctx context.Context, s entity.ActorSession) (string, error) {
		if fallar {
			return "", errors.New("backend caído")
		}
		return "datos buenos", nil
	})

	require.NoError(t, h.Refresh(context.Background(), sesionDemo))
	fallar = true
	require.Error(t, h.Refresh(context.Background(), sesionDemo))

	snap := h.Snapshot()
	assert.Equal(t, "datos buenos", snap.Data, "una carga fallida no pisa los datos previos")
	assert.Error(t, snap.Err)
}

func TestHook_LaUltimaSolicitudGana(t *testing.T) {
	// la primera solicitud queda bloqueada hasta después de que la segunda
	// termina; su resultado debe descartarse aunque llegue al final
	primeraLista := make(chan struct{})
	suelta := make(chan struct{})

	var mu sync.Mutex
	llamada := 0

	h := NewHook(func(ctx context.Context, s entity.ActorSession) (string, error) {
		mu.Lock()
		llamada++
		n := llamada
		mu.Unlock()
		if n == 1 {
			close(primeraLista)
			<-suelta
			return "respuesta vieja", nil
		}
		return "respuesta nueva", nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = h.Refresh(context.Background(), sesionDemo)
	}()

	<-primeraLista
	require.NoError(t, h.Refresh(context.Background(), sesionDemo))
	assert.Equal(t, "respuesta nueva", h.Snapshot().Data)

	close(suelta)
	wg.Wait()

	snap := h.Snapshot()
	assert.Equal(t, "respuesta nueva", snap.Data,
		"la respuesta de la solicitud superada se descarta")
	assert.False(t, snap.Loading)
}
