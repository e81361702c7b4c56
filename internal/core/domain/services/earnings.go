package services

import (
	"grocery/internal/core/domain/model/kernel"
)

// Earnings policy constants, in currency units.
const (
	// FreeDeliveryThreshold is the order amount at and above which the
	// delivery fee is waived.
	FreeDeliveryThreshold = 199.0

	// StandardDeliveryFee is the flat fee charged below the threshold.
	StandardDeliveryFee = 40.0

	// FreeDeliveryEarning is what the partner earns on a free delivery.
	FreeDeliveryEarning = 25.0

	// StandardEarning is what the partner earns on a fee-charged delivery.
	StandardEarning = 30.0

	// BulkTargetSize is the batch size at which the one-time target bonus applies.
	BulkTargetSize = 12

	// BulkTargetBonus is the flat bonus added once when a batch reaches BulkTargetSize.
	BulkTargetBonus = 80.0
)

// DeliveryFee computes the customer-facing delivery fee for an order amount:
// free at or above the threshold, flat fee below it.
func DeliveryFee(orderAmount kernel.Money) kernel.Money {
	if orderAmount.Amount() >= FreeDeliveryThreshold {
		return kernel.ZeroMoney()
	}
	return money(StandardDeliveryFee)
}

// PartnerEarning computes what the partner earns for a delivery with the
// given fee. Free deliveries pay less than fee-charged ones.
func PartnerEarning(deliveryFee kernel.Money) kernel.Money {
	if deliveryFee.IsZero() {
		return money(FreeDeliveryEarning)
	}
	return money(StandardEarning)
}

// BulkDelivery is one delivery in a bulk earnings computation: the order
// amount plus any per-delivery bonus.
type BulkDelivery struct {
	Amount kernel.Money
	Bonus  kernel.Money
}

// BulkEarnings computes the total earning for a batch of deliveries: the
// per-delivery earning derived from each amount plus its bonus, summed, with
// one flat target bonus added when the batch reaches BulkTargetSize.
func BulkEarnings(deliveries []BulkDelivery) kernel.Money {
	total := kernel.ZeroMoney()
	for _, d := range deliveries {
		total = total.Add(PartnerEarning(DeliveryFee(d.Amount))).Add(d.Bonus)
	}
	if len(deliveries) >= BulkTargetSize {
		total = total.Add(money(BulkTargetBonus))
	}
	return total
}

// money wraps a policy constant; all policy constants are finite and non-negative.
func money(v float64) kernel.Money {
	m, _ := kernel.NewMoney(v)
	return m
}
