package memory

import (
	"context"
	"sort"

	"github.com/cobrepro/pedidos-api/internal/domain"
	"github.com/cobrepro/pedidos-api/internal/domain/authz"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.DiscountTierRepository = (*DiscountTierRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	st *Store
}

// NewProductRepository construye el adaptador.
func NewProductRepository(st *Store) *ProductRepo {
	return &ProductRepo{st: st}
}

// Create persiste un nuevo producto. Autoriza antes de escribir.
func (r *ProductRepo) Create(ctx context.Context, s entity.ActorSession, product *entity.Product) error {
	if err := authz.Check(s, authz.WriteProduct, product.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, p := range r.st.products {
		if p.TenantID == product.TenantID && p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.st.products[product.ID] = *product
	return nil
}

// GetByID obtiene un producto del tenant de la sesión. Un ID de otro tenant
// resulta en ErrNotFound: el aislamiento nunca revela el registro.
func (r *ProductRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Product, error) {
	if err := authz.Check(s, authz.ReadProduct, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	p, ok := r.st.products[id]
	if !ok || p.TenantID != s.TenantID {
		return nil, domain.ErrNotFound
	}
	out := p
	return &out, nil
}

// List lista productos del tenant con paginación, ordenados por SKU.
func (r *ProductRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Product, error) {
	if err := authz.Check(s, authz.ReadProduct, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var all []*entity.Product
	for _, p := range r.st.products {
		if p.TenantID == s.TenantID {
			cp := p
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SKU < all[j].SKU })
	return paginate(all, limit, offset), nil
}

// Update actualiza un producto existente del tenant.
func (r *ProductRepo) Update(ctx context.Context, s entity.ActorSession, product *entity.Product) error {
	if err := authz.Check(s, authz.WriteProduct, product.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur, ok := r.st.products[product.ID]
	if !ok || cur.TenantID != product.TenantID {
		return domain.ErrNotFound
	}
	r.st.products[product.ID] = *product
	return nil
}

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	st *Store
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(st *Store) *CategoryRepo {
	return &CategoryRepo{st: st}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, s entity.ActorSession, category *entity.Category) error {
	if err := authz.Check(s, authz.WriteCategory, category.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, c := range r.st.categories {
		if c.TenantID == category.TenantID && c.Code == category.Code {
			return domain.ErrDuplicate
		}
	}
	r.st.categories[category.ID] = *category
	return nil
}

// GetByID obtiene una categoría del tenant de la sesión.
func (r *CategoryRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.Category, error) {
	if err := authz.Check(s, authz.ReadCategory, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	c, ok := r.st.categories[id]
	if !ok || c.TenantID != s.TenantID {
		return nil, domain.ErrNotFound
	}
	out := c
	return &out, nil
}

// List lista categorías del tenant ordenadas por código.
func (r *CategoryRepo) List(ctx context.Context, s entity.ActorSession, limit, offset int) ([]*entity.Category, error) {
	if err := authz.Check(s, authz.ReadCategory, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var all []*entity.Category
	for _, c := range r.st.categories {
		if c.TenantID == s.TenantID {
			cp := c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return paginate(all, limit, offset), nil
}

// Update actualiza una categoría existente del tenant.
func (r *CategoryRepo) Update(ctx context.Context, s entity.ActorSession, category *entity.Category) error {
	if err := authz.Check(s, authz.WriteCategory, category.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur, ok := r.st.categories[category.ID]
	if !ok || cur.TenantID != category.TenantID {
		return domain.ErrNotFound
	}
	r.st.categories[category.ID] = *category
	return nil
}

// DiscountTierRepo implementación en memoria de DiscountTierRepository.
type DiscountTierRepo struct {
	st *Store
}

// NewDiscountTierRepository construye el adaptador.
func NewDiscountTierRepository(st *Store) *DiscountTierRepo {
	return &DiscountTierRepo{st: st}
}

// Create persiste un nuevo tramo de descuento.
func (r *DiscountTierRepo) Create(ctx context.Context, s entity.ActorSession, tier *entity.DiscountTier) error {
	if err := authz.Check(s, authz.WriteDiscountTier, tier.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.tiers[tier.ID] = *tier
	return nil
}

// GetByID obtiene un tramo del tenant de la sesión.
func (r *DiscountTierRepo) GetByID(ctx context.Context, s entity.ActorSession, id string) (*entity.DiscountTier, error) {
	if err := authz.Check(s, authz.ReadDiscountTier, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	t, ok := r.st.tiers[id]
	if !ok || t.TenantID != s.TenantID {
		return nil, domain.ErrNotFound
	}
	out := t
	return &out, nil
}

// List lista los tramos del tenant ordenados por kilos mínimos ascendentes.
func (r *DiscountTierRepo) List(ctx context.Context, s entity.ActorSession) ([]*entity.DiscountTier, error) {
	if err := authz.Check(s, authz.ReadDiscountTier, s.TenantID); err != nil {
		return nil, err
	}
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var all []*entity.DiscountTier
	for _, t := range r.st.tiers {
		if t.TenantID == s.TenantID {
			cp := t
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MinKg.LessThan(all[j].MinKg) })
	return all, nil
}

// Update actualiza un tramo existente del tenant.
func (r *DiscountTierRepo) Update(ctx context.Context, s entity.ActorSession, tier *entity.DiscountTier) error {
	if err := authz.Check(s, authz.WriteDiscountTier, tier.TenantID); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	cur, ok := r.st.tiers[tier.ID]
	if !ok || cur.TenantID != tier.TenantID {
		return domain.ErrNotFound
	}
	r.st.tiers[tier.ID] = *tier
	return nil
}

// paginate aplica limit/offset sobre una lista ya ordenada.
func paginate[T any](all []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
