package usecase

import (
	"context"
	"time"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountTierUseCase casos de uso para tramos de descuento por volumen.
type DiscountTierUseCase struct {
	repo repository.DiscountTierRepository
}

// NewDiscountTierUseCase construye el caso de uso.
func NewDiscountTierUseCase(repo repository.DiscountTierRepository) *DiscountTierUseCase {
	return &DiscountTierUseCase{repo: repo}
}

// Create crea un tramo. DiscountPct debe estar en (0, 100).
func (uc *DiscountTierUseCase) Create(ctx context.Context, s entity.ActorSession, in dto.CreateDiscountTierRequest) (*dto.DiscountTierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.MinKg.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	hundred := decimal.NewFromInt(100)
	if !in.DiscountPct.IsPositive() || in.DiscountPct.GreaterThanOrEqual(hundred) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tier := &entity.DiscountTier{
		ID:          uuid.New().String(),
		TenantID:    s.TenantID,
		Name:        in.Name,
		MinKg:       in.MinKg,
		DiscountPct: in.DiscountPct,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, s, tier); err != nil {
		return nil, err
	}
	return toDiscountTierResponse(tier), nil
}

// List lista todos los tramos del tenant.
func (uc *DiscountTierUseCase) List(ctx context.Context, s entity.ActorSession) ([]dto.DiscountTierResponse, error) {
	tiers, err := uc.repo.List(ctx, s)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiscountTierResponse, 0, len(tiers))
	for _, t := range tiers {
		items = append(items, *toDiscountTierResponse(t))
	}
	return items, nil
}

func toDiscountTierResponse(t *entity.DiscountTier) *dto.DiscountTierResponse {
	if t == nil {
		return nil
	}
	return &dto.DiscountTierResponse{
		ID:          t.ID,
		TenantID:    t.TenantID,
		Name:        t.Name,
		MinKg:       t.MinKg,
		DiscountPct: t.DiscountPct,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
