package order

// PaymentMethod is how the customer chose to pay at order placement.
type PaymentMethod string

const (
	// PaymentMethodCOD means cash on delivery: the partner collects payment
	// at the door and the order cannot be delivered until collection is recorded.
	PaymentMethodCOD PaymentMethod = "COD"

	// PaymentMethodOnline means payment was confirmed upstream before the
	// order was placed.
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// IsValid reports whether the method is one of the defined payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodOnline:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus tracks whether the order has been paid for.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// IsValid reports whether the status is one of the defined payment statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// ActualPaymentMethod records how a cash-on-delivery payment was actually
// collected at the door. Only set for COD orders, at collection time.
type ActualPaymentMethod string

const (
	ActualPaymentCash ActualPaymentMethod = "CASH"
	ActualPaymentUPI  ActualPaymentMethod = "UPI"
	ActualPaymentCard ActualPaymentMethod = "CARD"
)

// IsValid reports whether the method is one of the defined collection methods.
func (m ActualPaymentMethod) IsValid() bool {
	switch m {
	case ActualPaymentCash, ActualPaymentUPI, ActualPaymentCard:
		return true
	default:
		return false
	}
}

func (m ActualPaymentMethod) String() string {
	return string(m)
}
