package repository

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"mediazone/internal/domain/entity"
	"mediazone/internal/domain/repository"
)

type jsonFileOrderRepository struct {
	store *Store
}

// NewJSONFileOrderRepository builds the order store over
// <dataDir>/orders.json.
func NewJSONFileOrderRepository(dataDir string) repository.OrderRepository {
	return &jsonFileOrderRepository{
		store: NewStore(filepath.Join(dataDir, "orders.json"), "orders", "Order"),
	}
}

// List returns all orders newest first. The ordering is computed at read
// time from the createdAt stamps, not stored.
func (r *jsonFileOrderRepository) List(ctx context.Context) ([]map[string]interface{}, error) {
	orders, err := r.store.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return createdAt(orders[i]).After(createdAt(orders[j]))
	})

	return orders, nil
}

func (r *jsonFileOrderRepository) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	return r.store.Get(id)
}

// Create defaults status to pending when the caller omits it. Everything
// else, the caller-supplied total included, passes through verbatim.
func (r *jsonFileOrderRepository) Create(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	order := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		order[k] = v
	}

	if status, ok := order["status"].(string); !ok || status == "" {
		order["status"] = entity.StatusPending
	}

	return r.store.Create(order)
}

func (r *jsonFileOrderRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (map[string]interface{}, error) {
	return r.store.Update(id, patch)
}

func createdAt(order map[string]interface{}) time.Time {
	raw, ok := order["createdAt"].(string)
	if !ok {
		return time.Time{}
	}

	ts, err := time.Parse(timeFormat, raw)
	if err != nil {
		// Tolerate stamps written by other tooling.
		if ts, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return time.Time{}
		}
	}

	return ts
}
