package repository

import (
	"context"
	"path/filepath"

	"mediazone/internal/domain/repository"
)

type jsonFileProductRepository struct {
	store *Store
}

// NewJSONFileProductRepository builds the product store over
// <dataDir>/products.json. Requiredness of title/price is the boundary
// layer's job; the store persists whatever it is handed.
func NewJSONFileProductRepository(dataDir string) repository.ProductRepository {
	return &jsonFileProductRepository{
		store: NewStore(filepath.Join(dataDir, "products.json"), "products", "Product"),
	}
}

func (r *jsonFileProductRepository) List(ctx context.Context) ([]map[string]interface{}, error) {
	return r.store.List()
}

func (r *jsonFileProductRepository) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	return r.store.Get(id)
}

func (r *jsonFileProductRepository) Create(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	return r.store.Create(data)
}

func (r *jsonFileProductRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (map[string]interface{}, error) {
	return r.store.Update(id, patch)
}

func (r *jsonFileProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}
