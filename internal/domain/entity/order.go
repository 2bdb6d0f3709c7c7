package entity

// Order statuses used by the back office. The store itself accepts any status
// string on update; this vocabulary is what the UI renders and filters on.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// OrderItem is a line item snapshot taken from the cart at checkout. Title
// and price are copied from the product at order time and do not track later
// catalog edits.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Order models the known fields of an order record. Orders pass through the
// store as documents and may carry extra caller fields beyond these.
type Order struct {
	ID                string      `json:"id"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	FullName          string      `json:"fullName"`
	Phone             string      `json:"phone"`
	Address           string      `json:"address"`
	Notes             string      `json:"notes"`
	PaymentMethod     string      `json:"paymentMethod"`
	WhatsappNumber    string      `json:"whatsappNumber"`
	PaymentProofImage string      `json:"paymentProofImage"`
	Status            string      `json:"status"`
	CreatedAt         string      `json:"createdAt,omitempty"`
	UpdatedAt         string      `json:"updatedAt,omitempty"`
}
