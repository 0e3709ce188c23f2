package order

import (
	"math/rand"

	"aroma-storefront/internal/cart"
	"aroma-storefront/internal/domain"
)

const MaxTableNumber = 20

// TableAssigner picks a table for dine-in orders that arrive without one.
type TableAssigner interface {
	Assign() int
}

// RandomTables assigns a table uniformly in [1, MaxTableNumber]. The number
// is only meaningful for the order it is attached to.
type RandomTables struct{}

func (RandomTables) Assign() int {
	return rand.Intn(MaxTableNumber) + 1
}

// BuildPayload turns cart lines into the order body. Takeaway orders never
// carry a table; dine-in orders use table when set, otherwise tables.Assign().
func BuildPayload(lines []domain.CartLine, orderType domain.OrderType, customer domain.CustomerInfo, table *int, tables TableAssigner) domain.OrderPayload {
	items := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderLine{ID: line.Item.ID, Qty: line.Qty})
	}

	var tableNumber *int
	if orderType == domain.OrderTypeDineIn {
		switch {
		case table != nil:
			n := *table
			tableNumber = &n
		case tables != nil:
			n := tables.Assign()
			tableNumber = &n
		default:
			n := RandomTables{}.Assign()
			tableNumber = &n
		}
	}

	return domain.OrderPayload{
		Items:             items,
		OrderType:         orderType,
		TableNumber:       tableNumber,
		CustomerName:      customer.Name,
		CustomerEmail:     customer.Email,
		MarketingConsent:  customer.MarketingConsent,
		NewsletterConsent: customer.NewsletterConsent,
		Total:             cart.Total(lines),
	}
}
