package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// OrderSummary carries the snapshot fields the checkout handoff message is
// built from. Line items use the title/price captured at order time.
type OrderSummary struct {
	FullName string
	Phone    string
	Address  string
	Notes    string
	Items    []Line
	Total    float64
	ProofURL string
}

type Line struct {
	Title    string
	Quantity int
}

// OrderLink formats the wa.me deep link the storefront redirects to after an
// order is submitted. The message body matches what the checkout page sends,
// Arabic labels included.
func OrderLink(storePhone string, o OrderSummary) string {
	lines := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("- %s (x%d)", item.Title, item.Quantity))
	}

	notes := o.Notes
	if notes == "" {
		notes = "لا يوجد"
	}

	message := fmt.Sprintf(`طلب جديد من موقع Media Zone:
الاسم: %s
الهاتف: %s
العنوان: %s

المنتجات:
%s

السعر النهائي: %.2f
ملاحظة: %s

رابط الإثبات: %s`,
		o.FullName, o.Phone, o.Address, strings.Join(lines, "\n"), o.Total, notes, o.ProofURL)

	return "https://wa.me/" + storePhone + "?text=" + url.QueryEscape(message)
}
