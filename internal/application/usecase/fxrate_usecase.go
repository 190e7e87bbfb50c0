package usecase

import (
	"context"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

// FXRateUseCase casos de uso para la tasa de cambio. El repositorio valida la
// tasa y autoriza: escribir es solo-admin, leer es cualquier rol del tenant.
type FXRateUseCase struct {
	repo repository.FXRateRepository
}

// NewFXRateUseCase construye el caso de uso.
func NewFXRateUseCase(repo repository.FXRateRepository) *FXRateUseCase {
	return &FXRateUseCase{repo: repo}
}

// GetCurrent obtiene la tasa vigente.
func (uc *FXRateUseCase) GetCurrent(ctx context.Context, s entity.ActorSession) (*dto.FXRateResponse, error) {
	rate, err := uc.repo.GetCurrent(ctx, s)
	if err != nil {
		return nil, err
	}
	return toFXRateResponse(rate), nil
}

// GetHistory obtiene el historial completo, del más reciente al más antiguo.
// Current siempre coincide con el primer elemento del historial.
func (uc *FXRateUseCase) GetHistory(ctx context.Context, s entity.ActorSession) (*dto.FXRateHistoryResponse, error) {
	history, err := uc.repo.GetHistory(ctx, s)
	if err != nil {
		return nil, err
	}
	out := &dto.FXRateHistoryResponse{History: make([]dto.FXRateResponse, 0, len(history))}
	for _, r := range history {
		out.History = append(out.History, *toFXRateResponse(r))
	}
	if len(out.History) > 0 {
		out.Current = &out.History[0]
	}
	return out, nil
}

// UpdateRate escribe una nueva tasa vigente y devuelve el registro creado.
func (uc *FXRateUseCase) UpdateRate(ctx context.Context, s entity.ActorSession, in dto.UpdateRateRequest) (*dto.FXRateResponse, error) {
	rate, err := uc.repo.UpdateRate(ctx, s, in.Rate)
	if err != nil {
		return nil, err
	}
	return toFXRateResponse(rate), nil
}

func toFXRateResponse(r *entity.FXRate) *dto.FXRateResponse {
	if r == nil {
		return nil
	}
	return &dto.FXRateResponse{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Rate:      r.Rate,
		UpdatedAt: r.UpdatedAt,
		UpdatedBy: r.UpdatedBy,
	}
}
