package order_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, method order.PaymentMethod) *orderFixture {
	t.Helper()

	zone, err := kernel.NewZoneCode("560001")
	require.NoError(t, err)
	amount, err := kernel.NewMoney(250)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), zone, amount, method, time.Now().UTC())
	require.NoError(t, err)
	return &orderFixture{o: o, partnerID: kernel.NewUUID()}
}

// orderFixture pairs an aggregate with a partner ID the tests can
// assign and act with.
type orderFixture struct {
	o         *order.Order
	partnerID kernel.UUID
}

func (f *orderFixture) assign(t *testing.T) {
	t.Helper()
	fee, _ := kernel.NewMoney(40)
	earning, _ := kernel.NewMoney(30)
	require.NoError(t, f.o.Assign(f.partnerID, fee, earning, time.Now().UTC()))
}

func (f *orderFixture) advanceToOutForDelivery(t *testing.T) {
	t.Helper()
	f.assign(t)
	require.NoError(t, f.o.MarkPickedUp(f.partnerID, time.Now().UTC()))
	require.NoError(t, f.o.MarkOutForDelivery(f.partnerID, time.Now().UTC()))
}

func TestNewOrder(t *testing.T) {
	t.Run("online order starts placed and paid", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)

		assert.Equal(t, order.Placed, f.o.Status())
		assert.Equal(t, order.PaymentStatusPaid, f.o.PaymentStatus())
		assert.Equal(t, int64(1), f.o.Version())
		assert.Nil(t, f.o.AssignedPartner())
		assert.False(t, f.o.PlacedAt().IsZero())
	})

	t.Run("cod order starts with payment pending", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)

		assert.Equal(t, order.PaymentStatusPending, f.o.PaymentStatus())
		assert.Nil(t, f.o.ActualPaymentMethod())
		assert.Nil(t, f.o.PaymentCompletedAt())
	})

	t.Run("rejects empty id", func(t *testing.T) {
		zone, _ := kernel.NewZoneCode("560001")
		amount, _ := kernel.NewMoney(100)

		_, err := order.NewOrder(kernel.UUID{}, zone, amount, order.PaymentMethodCOD, time.Now().UTC())
		require.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		zone, _ := kernel.NewZoneCode("560001")
		amount, _ := kernel.NewMoney(100)

		_, err := order.NewOrder(kernel.NewUUID(), zone, amount, order.PaymentMethod("WALLET"), time.Now().UTC())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderAssign(t *testing.T) {
	t.Run("binds partner with fee and earning", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		fee, _ := kernel.NewMoney(0)
		earning, _ := kernel.NewMoney(25)
		now := time.Now().UTC()

		err := f.o.Assign(f.partnerID, fee, earning, now)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, f.o.Status())
		require.NotNil(t, f.o.AssignedPartner())
		assert.True(t, f.o.AssignedPartner().IsEqual(f.partnerID))
		assert.True(t, f.o.DeliveryFee().IsEqual(fee))
		assert.True(t, f.o.PartnerEarning().IsEqual(earning))
		require.NotNil(t, f.o.AssignedAt())
		assert.Equal(t, now, *f.o.AssignedAt())
	})

	t.Run("rejects assign when not placed", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.assign(t)

		fee, _ := kernel.NewMoney(40)
		earning, _ := kernel.NewMoney(30)
		err := f.o.Assign(kernel.NewUUID(), fee, earning, time.Now().UTC())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.True(t, f.o.AssignedPartner().IsEqual(f.partnerID))
	})

	t.Run("rejects empty partner id", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		fee, _ := kernel.NewMoney(40)
		earning, _ := kernel.NewMoney(30)

		err := f.o.Assign(kernel.UUID{}, fee, earning, time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, order.Placed, f.o.Status())
	})
}

func TestOrderLifecycleActorGuard(t *testing.T) {
	t.Run("only assigned partner may pick up", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.assign(t)

		err := f.o.MarkPickedUp(kernel.NewUUID(), time.Now().UTC())

		require.ErrorIs(t, err, order.ErrNotAssignedPartner)
		assert.Equal(t, order.Assigned, f.o.Status())
	})

	t.Run("only assigned partner may start delivery", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.assign(t)
		require.NoError(t, f.o.MarkPickedUp(f.partnerID, time.Now().UTC()))

		err := f.o.MarkOutForDelivery(kernel.NewUUID(), time.Now().UTC())

		require.ErrorIs(t, err, order.ErrNotAssignedPartner)
		assert.Equal(t, order.PickedUp, f.o.Status())
	})

	t.Run("only assigned partner may deliver", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.advanceToOutForDelivery(t)

		err := f.o.MarkDelivered(kernel.NewUUID(), time.Now().UTC())

		require.ErrorIs(t, err, order.ErrNotAssignedPartner)
		assert.Equal(t, order.OutForDelivery, f.o.Status())
	})
}

func TestOrderDelivery(t *testing.T) {
	t.Run("online order delivers without payment collection", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.advanceToOutForDelivery(t)
		now := time.Now().UTC()

		err := f.o.MarkDelivered(f.partnerID, now)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, f.o.Status())
		require.NotNil(t, f.o.DeliveredAt())
		assert.Equal(t, now, *f.o.DeliveredAt())
	})

	t.Run("cod order is blocked until payment is collected", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		f.advanceToOutForDelivery(t)

		err := f.o.MarkDelivered(f.partnerID, time.Now().UTC())

		require.ErrorIs(t, err, order.ErrPaymentRequired)
		assert.Equal(t, order.OutForDelivery, f.o.Status())
		assert.Nil(t, f.o.DeliveredAt())
	})

	t.Run("cod order delivers after payment", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		f.advanceToOutForDelivery(t)
		require.NoError(t, f.o.RecordCODPayment(order.ActualPaymentCash, "", "", time.Now().UTC()))

		err := f.o.MarkDelivered(f.partnerID, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, f.o.Status())
	})

	t.Run("rejects delivery before out for delivery", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.assign(t)

		err := f.o.MarkDelivered(f.partnerID, time.Now().UTC())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrderRecordCODPayment(t *testing.T) {
	t.Run("records collection details", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		f.advanceToOutForDelivery(t)
		now := time.Now().UTC()

		err := f.o.RecordCODPayment(order.ActualPaymentUPI, "txn-42", "customer paid via app", now)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, f.o.PaymentStatus())
		require.NotNil(t, f.o.ActualPaymentMethod())
		assert.Equal(t, order.ActualPaymentUPI, *f.o.ActualPaymentMethod())
		assert.Equal(t, "txn-42", f.o.PaymentTxnRef())
		assert.Equal(t, "customer paid via app", f.o.PaymentNotes())
		require.NotNil(t, f.o.PaymentCompletedAt())
		assert.Equal(t, now, *f.o.PaymentCompletedAt())
	})

	t.Run("rejects double collection", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		f.advanceToOutForDelivery(t)
		require.NoError(t, f.o.RecordCODPayment(order.ActualPaymentCash, "txn-1", "", time.Now().UTC()))

		err := f.o.RecordCODPayment(order.ActualPaymentCard, "txn-2", "", time.Now().UTC())

		require.ErrorIs(t, err, order.ErrPaymentAlreadyCollected)
		assert.Equal(t, order.ActualPaymentCash, *f.o.ActualPaymentMethod())
		assert.Equal(t, "txn-1", f.o.PaymentTxnRef())
	})

	t.Run("rejects collection on online order", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.advanceToOutForDelivery(t)

		err := f.o.RecordCODPayment(order.ActualPaymentCash, "", "", time.Now().UTC())

		require.ErrorIs(t, err, order.ErrPaymentNotCOD)
	})

	t.Run("rejects unknown collection method", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		f.advanceToOutForDelivery(t)

		err := f.o.RecordCODPayment(order.ActualPaymentMethod("CHEQUE"), "", "", time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PaymentStatusPending, f.o.PaymentStatus())
	})
}

func TestOrderCancel(t *testing.T) {
	t.Run("cancels a placed order", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		now := time.Now().UTC()

		err := f.o.Cancel(now)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, f.o.Status())
		require.NotNil(t, f.o.CancelledAt())
		assert.Equal(t, now, *f.o.CancelledAt())
	})

	t.Run("cancel preserves partner binding", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.assign(t)

		require.NoError(t, f.o.Cancel(time.Now().UTC()))

		require.NotNil(t, f.o.AssignedPartner())
		assert.True(t, f.o.AssignedPartner().IsEqual(f.partnerID))
	})

	t.Run("rejects cancel of delivered order", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodOnline)
		f.advanceToOutForDelivery(t)
		require.NoError(t, f.o.MarkDelivered(f.partnerID, time.Now().UTC()))

		err := f.o.Cancel(time.Now().UTC())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("rejects cancel of cancelled order", func(t *testing.T) {
		f := newTestOrder(t, order.PaymentMethodCOD)
		require.NoError(t, f.o.Cancel(time.Now().UTC()))

		err := f.o.Cancel(time.Now().UTC())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	validParams := func() order.RestoreOrderParams {
		zone, _ := kernel.NewZoneCode("560001")
		amount, _ := kernel.NewMoney(320)
		return order.RestoreOrderParams{
			ID:            kernel.NewUUID(),
			ZoneCode:      zone,
			TotalAmount:   amount,
			Status:        order.Placed,
			PaymentMethod: order.PaymentMethodCOD,
			PaymentStatus: order.PaymentStatusPending,
			PlacedAt:      time.Now().UTC(),
			Version:       3,
		}
	}

	t.Run("restores persisted state", func(t *testing.T) {
		params := validParams()

		o, err := order.RestoreOrder(params)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(params.ID))
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, int64(3), o.Version())
		require.NoError(t, o.Validate())
	})

	t.Run("active order requires partner binding", func(t *testing.T) {
		params := validParams()
		params.Status = order.Assigned

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive version", func(t *testing.T) {
		params := validParams()
		params.Version = 0

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
	})
}
