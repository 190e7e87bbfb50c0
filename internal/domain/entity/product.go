package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de cobre comercializable (alambrón, cátodo,
// barra, etc.). Datos de referencia: se leen mucho y se modifican poco, solo
// por roles internos/admin.
type Product struct {
	ID          string
	TenantID    string
	CategoryID  string // vacío si no está categorizado
	SKU         string // código único por tenant
	Name        string
	Description string
	PricePerKg  decimal.Decimal // precio de lista por kilogramo
	StockKg     decimal.Decimal // disponibilidad informativa en kg
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
