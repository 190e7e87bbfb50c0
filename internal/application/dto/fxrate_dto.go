package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateRateRequest escritura de una nueva tasa de cambio vigente.
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// FXRateResponse un registro del historial de tasa.
type FXRateResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updated_at"`
	UpdatedBy string          `json:"updated_by"`
}

// FXRateHistoryResponse historial completo, del más reciente al más antiguo.
type FXRateHistoryResponse struct {
	Current *FXRateResponse  `json:"current"`
	History []FXRateResponse `json:"history"`
}
