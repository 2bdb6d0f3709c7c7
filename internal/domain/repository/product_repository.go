package repository

import (
	"context"
)

// ProductRepository is the injected store abstraction over product records.
// Records are open documents: handlers patch them with arbitrary JSON and the
// store merges fields without a schema, so the boundary is map-shaped.
type ProductRepository interface {
	List(ctx context.Context) ([]map[string]interface{}, error)
	GetByID(ctx context.Context, id string) (map[string]interface{}, error)
	Create(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, id string) error
}
