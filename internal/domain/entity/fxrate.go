package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXRate es un registro del historial de tasa de cambio (USD por unidad de
// moneda local). El historial es append-only y se ordena del más reciente al
// más antiguo; la tasa vigente es siempre el primer elemento del historial.
type FXRate struct {
	ID        string
	TenantID  string
	Rate      decimal.Decimal // estrictamente > 0
	UpdatedAt time.Time
	UpdatedBy string // nombre del actor que confirmó la escritura
}

// ValidRate verifica que una tasa propuesta sea válida para escribirse.
func ValidRate(rate decimal.Decimal) bool {
	return rate.IsPositive()
}
