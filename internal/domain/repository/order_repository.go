package repository

import (
	"context"
)

// OrderRepository covers the order document. Orders are never hard-deleted;
// the back office only transitions their status via Update.
type OrderRepository interface {
	// List returns all orders sorted by creation time, newest first.
	List(ctx context.Context) ([]map[string]interface{}, error)
	GetByID(ctx context.Context, id string) (map[string]interface{}, error)
	Create(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (map[string]interface{}, error)
}
