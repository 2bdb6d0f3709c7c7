package usecase

import (
	"context"
	"encoding/json"

	"mediazone/internal/domain/entity"
	"mediazone/internal/domain/repository"
	"mediazone/pkg/errors"
	"mediazone/pkg/whatsapp"
)

type OrderUseCase struct {
	orderRepo  repository.OrderRepository
	storePhone string
}

func NewOrderUseCase(orderRepo repository.OrderRepository, storePhone string) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		storePhone: storePhone,
	}
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]map[string]interface{}, error) {
	return u.orderRepo.List(ctx)
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (map[string]interface{}, error) {
	return u.orderRepo.GetByID(ctx, id)
}

// CreateOrder persists the checkout payload. The total is taken from the
// caller as-is; line items are snapshots the cart already priced.
func (u *OrderUseCase) CreateOrder(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	return u.orderRepo.Create(ctx, data)
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, id string, patch map[string]interface{}) (map[string]interface{}, error) {
	return u.orderRepo.Update(ctx, id, patch)
}

// WhatsAppLink builds the checkout handoff deep link for an order: the
// wa.me URL carrying the order summary message the storefront redirects the
// customer to after submitting.
func (u *OrderUseCase) WhatsAppLink(ctx context.Context, id string) (string, error) {
	record, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	order, err := decodeOrder(record)
	if err != nil {
		return "", err
	}

	summary := whatsapp.OrderSummary{
		FullName: order.FullName,
		Phone:    order.Phone,
		Address:  order.Address,
		Notes:    order.Notes,
		Total:    order.Total,
		ProofURL: order.PaymentProofImage,
	}
	for _, item := range order.Items {
		summary.Items = append(summary.Items, whatsapp.Line{
			Title:    item.Title,
			Quantity: item.Qty,
		})
	}

	return whatsapp.OrderLink(u.storePhone, summary), nil
}

func decodeOrder(record map[string]interface{}) (*entity.Order, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Internal("failed to encode order record", err)
	}

	var order entity.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, errors.Internal("failed to decode order record", err)
	}

	return &order, nil
}
