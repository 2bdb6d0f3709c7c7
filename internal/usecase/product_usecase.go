package usecase

import (
	"context"

	"mediazone/internal/domain/repository"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

// ListProducts returns the whole catalog. Category and search filtering
// happen on the storefront, not here.
func (u *ProductUseCase) ListProducts(ctx context.Context) ([]map[string]interface{}, error) {
	return u.productRepo.List(ctx)
}

func (u *ProductUseCase) GetProduct(ctx context.Context, id string) (map[string]interface{}, error) {
	return u.productRepo.GetByID(ctx, id)
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	return u.productRepo.Create(ctx, data)
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, id string, patch map[string]interface{}) (map[string]interface{}, error) {
	return u.productRepo.Update(ctx, id, patch)
}

func (u *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	return u.productRepo.Delete(ctx, id)
}
