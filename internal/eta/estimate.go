package eta

import (
	"time"

	"github.com/velocart/delivery-coverage/internal/pricing"
)

// Delivery promise in calendar days by speed tier.
const (
	expressMaxDays  = 2
	standardMaxDays = 5
)

// Window is the promised delivery window for an order: the latest
// acceptable delivery in days from the order date, and the concrete
// expected date.
type Window struct {
	MaxDays      int
	ExpectedDate time.Time
}

// Estimate returns the delivery window for an order placed at
// orderDate. The arithmetic is plain calendar days in the caller's
// location; no timezone shifting is applied.
func Estimate(orderDate time.Time, deliveryType pricing.DeliveryType) Window {
	maxDays := standardMaxDays
	if deliveryType == pricing.Express {
		maxDays = expressMaxDays
	}

	return Window{
		MaxDays:      maxDays,
		ExpectedDate: orderDate.AddDate(0, 0, maxDays),
	}
}
