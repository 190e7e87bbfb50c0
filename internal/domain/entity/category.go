package entity

import "time"

// Category agrupa productos (ej. cátodos, alambrón, derivados).
type Category struct {
	ID        string
	TenantID  string
	Name      string
	Code      string // código único por tenant
	CreatedAt time.Time
	UpdatedAt time.Time
}
