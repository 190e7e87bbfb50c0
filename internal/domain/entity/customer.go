package entity

import "time"

// Estados de un Customer. No hay borrado físico: un cliente se desactiva.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Customer representa un cliente comprador de la operación de cobre.
// Lo crean y modifican roles internos/admin; una sesión cliente solo lo lee.
type Customer struct {
	ID        string
	TenantID  string
	Name      string
	TaxID     string // NIT o identificación fiscal
	Email     string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si el cliente puede operar (crear pedidos).
func (c *Customer) IsActive() bool {
	return c.Status == CustomerActive
}
