package entity

import "time"

// Tenant es la frontera de aislamiento: toda entidad y toda sesión pertenecen
// exactamente a un tenant. Hoy opera un solo tenant, pero el contrato asume
// que puede haber varios compartiendo el mismo almacenamiento.
type Tenant struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
