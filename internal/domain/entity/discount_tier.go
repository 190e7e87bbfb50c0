package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountTier define un tramo de descuento por volumen: a partir de MinKg
// kilogramos se aplica DiscountPct por ciento sobre el precio de lista.
// Datos de referencia, solo modificables por roles internos/admin.
type DiscountTier struct {
	ID          string
	TenantID    string
	Name        string
	MinKg       decimal.Decimal
	DiscountPct decimal.Decimal // 0 < DiscountPct < 100
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
