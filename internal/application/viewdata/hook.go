package viewdata

import (
	"context"
	"sync"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// FetchFunc carga los datos de un hook para una sesión dada.
type FetchFunc[T any] func(ctx context.Context, s entity.ActorSession) (T, error)

// Snapshot es el estado observable de un hook en un instante: datos de la
// última carga aplicada, bandera de carga en curso y el error de la última
// carga fallida. Data y Err nunca son ambos de la misma carga: una carga
// exitosa limpia Err y una fallida conserva los datos previos.
type Snapshot[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Hook mantiene el estado de vista de una consulta y lo refresca bajo
// demanda. Refresh admite llamadas concurrentes: solo la última solicitud
// emitida puede aplicar su resultado (las anteriores se descartan aunque
// terminen después), de modo que el estado visible nunca retrocede a una
// respuesta vieja.
type Hook[T any] struct {
	mu    sync.Mutex
	fetch FetchFunc[T]
	state Snapshot[T]
	seq   uint64 // número de la última solicitud emitida
}

// NewHook construye un hook sin datos cargados.
func NewHook[T any](fetch FetchFunc[T]) *Hook[T] {
	return &Hook[T]{fetch: fetch}
}

// Snapshot devuelve el estado actual del hook.
func (h *Hook[T]) Snapshot() Snapshot[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Refresh ejecuta la carga y aplica el resultado si esta sigue siendo la
// solicitud más reciente. Bloquea hasta que la carga termina; devuelve el
// error de la carga propia aunque su resultado se haya descartado.
func (h *Hook[T]) Refresh(ctx context.Context, s entity.ActorSession) error {
	h.mu.Lock()
	h.seq++
	ticket := h.seq
	h.state.Loading = true
	h.mu.Unlock()

	data, err := h.fetch(ctx, s)

	h.mu.Lock()
	defer h.mu.Unlock()
	if ticket != h.seq {
		return err // llegó una solicitud más nueva, se descarta este resultado
	}
	h.state.Loading = false
	if err != nil {
		h.state.Err = err
		return err
	}
	h.state.Data = data
	h.state.Err = nil
	return nil
}
