package pricing

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	MethodCOD  PaymentMethod = "COD"
	MethodCard PaymentMethod = "CARD"
	MethodWire PaymentMethod = "WIRE"
)

// DeliveryType is the speed tier the customer selected.
type DeliveryType string

const (
	Express  DeliveryType = "EXPRESS"
	Standard DeliveryType = "STANDARD"
)

// Flat prepaid fees by speed tier.
const (
	expressFee  = 500
	standardFee = 200
)

// CodSchedule is the cash-on-delivery fee table. The schedule is
// configuration, not business logic: the calculator applies whatever
// amounts it is constructed with.
type CodSchedule struct {
	FirstOrderFee int
	RepeatFee     int
}

// Calculator derives the delivery fee for an order.
type Calculator struct {
	Cod CodSchedule
}

func New(cod CodSchedule) *Calculator {
	return &Calculator{Cod: cod}
}

// Fee returns the delivery fee. COD orders consult the schedule keyed
// on whether this is the customer's first COD order; prepaid orders
// pay a flat fee by speed tier.
func (c *Calculator) Fee(method PaymentMethod, deliveryType DeliveryType, priorCodOrders int) int {
	if method == MethodCOD {
		if FirstCodOrderFree(priorCodOrders) {
			return c.Cod.FirstOrderFee
		}
		return c.Cod.RepeatFee
	}

	if deliveryType == Express {
		return expressFee
	}

	return standardFee
}

// FirstCodOrderFree reports whether the customer qualifies for the
// first-COD-order rate. Exposed so callers can tag the order without
// re-deriving fee logic.
func FirstCodOrderFree(priorCodOrders int) bool {
	return priorCodOrders == 0
}
