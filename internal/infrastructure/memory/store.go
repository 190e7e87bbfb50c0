// Package memory implementa los repositorios de dominio sobre mapas en
// memoria. Sirve como backend "mock" (seleccionado por configuración) y como
// doble de pruebas: debe cumplir exactamente los mismos contratos de
// autorización e invariantes que el backend PostgreSQL.
package memory

import (
	"sync"
	"time"

	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// orderRecord encapsula un pedido con su propio mutex: la disciplina de
// serialización es por registro (fila), no por tabla.
type orderRecord struct {
	mu  sync.Mutex
	ord entity.Order
}

// fxRecord es el historial de tasa de un tenant, del más reciente al más
// antiguo, con escritor único a la vez.
type fxRecord struct {
	mu      sync.Mutex
	history []entity.FXRate
}

// Store es el almacenamiento compartido de todos los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	tenants    map[string]entity.Tenant
	customers  map[string]entity.Customer
	products   map[string]entity.Product
	categories map[string]entity.Category
	tiers      map[string]entity.DiscountTier
	users      map[string]entity.User
	orders     map[string]*orderRecord // clave: tenantID + "/" + reference
	fx         map[string]*fxRecord    // clave: tenantID
}

// NewStore construye un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		tenants:    make(map[string]entity.Tenant),
		customers:  make(map[string]entity.Customer),
		products:   make(map[string]entity.Product),
		categories: make(map[string]entity.Category),
		tiers:      make(map[string]entity.DiscountTier),
		users:      make(map[string]entity.User),
		orders:     make(map[string]*orderRecord),
		fx:         make(map[string]*fxRecord),
	}
}

func orderKey(tenantID, reference string) string {
	return tenantID + "/" + reference
}

// fxOf devuelve (creando si hace falta) el registro de tasa del tenant.
func (st *Store) fxOf(tenantID string) *fxRecord {
	st.mu.Lock()
	defer st.mu.Unlock()
	rec, ok := st.fx[tenantID]
	if !ok {
		rec = &fxRecord{}
		st.fx[tenantID] = rec
	}
	return rec
}

// cloneOrder copia un pedido con sus líneas y su LastSaved, para que el
// llamador nunca comparta memoria con el registro almacenado.
func cloneOrder(o entity.Order) *entity.Order {
	out := o
	out.Items = make([]entity.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	if o.LastSaved != nil {
		ts := *o.LastSaved
		out.LastSaved = &ts
	}
	return &out
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
