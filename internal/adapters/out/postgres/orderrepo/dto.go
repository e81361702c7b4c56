// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, zone and partner assignment.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ZoneCode            string     `gorm:"type:varchar(10);index:idx_orders_zone_status"`
	TotalAmount         float64    `gorm:"type:numeric(12,2)"`
	DeliveryFee         float64    `gorm:"type:numeric(12,2)"`
	PartnerEarning      float64    `gorm:"type:numeric(12,2)"`
	Status              int        `gorm:"index:idx_orders_zone_status"`
	PaymentMethod       string     `gorm:"type:varchar(10)"`
	PaymentStatus       string     `gorm:"type:varchar(10)"`
	ActualPaymentMethod *string    `gorm:"type:varchar(10)"`
	PaymentTxnRef       string     `gorm:"type:varchar(100)"`
	PaymentNotes        string     `gorm:"type:varchar(500)"`
	PaymentCompletedAt  *time.Time `gorm:"type:timestamptz"`
	PlacedAt            time.Time  `gorm:"type:timestamptz"`
	AssignedAt          *time.Time `gorm:"type:timestamptz"`
	PickedUpAt          *time.Time `gorm:"type:timestamptz"`
	DeliveredAt         *time.Time `gorm:"type:timestamptz"`
	CancelledAt         *time.Time `gorm:"type:timestamptz"`
	AssignedPartnerID   *uuid.UUID `gorm:"type:uuid;index"`
	Version             int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional partner assignment and
// payment collection details.
func fromDomain(o *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := o.AssignedPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var actualMethod *string
	if m := o.ActualPaymentMethod(); m != nil {
		s := m.String()
		actualMethod = &s
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		ZoneCode:            o.ZoneCode().String(),
		TotalAmount:         o.TotalAmount().Amount(),
		DeliveryFee:         o.DeliveryFee().Amount(),
		PartnerEarning:      o.PartnerEarning().Amount(),
		Status:              int(o.Status()),
		PaymentMethod:       o.PaymentMethod().String(),
		PaymentStatus:       o.PaymentStatus().String(),
		ActualPaymentMethod: actualMethod,
		PaymentTxnRef:       o.PaymentTxnRef(),
		PaymentNotes:        o.PaymentNotes(),
		PaymentCompletedAt:  o.PaymentCompletedAt(),
		PlacedAt:            o.PlacedAt(),
		AssignedAt:          o.AssignedAt(),
		PickedUpAt:          o.PickedUpAt(),
		DeliveredAt:         o.DeliveredAt(),
		CancelledAt:         o.CancelledAt(),
		AssignedPartnerID:   partnerID,
		Version:             o.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle timestamps and
// payment state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zone, err := kernel.NewZoneCode(dto.ZoneCode)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	partnerEarning, err := kernel.NewMoney(dto.PartnerEarning)
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.AssignedPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.AssignedPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	var actualMethod *order.ActualPaymentMethod
	if dto.ActualPaymentMethod != nil {
		m := order.ActualPaymentMethod(*dto.ActualPaymentMethod)
		actualMethod = &m
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                  id,
		ZoneCode:            zone,
		TotalAmount:         totalAmount,
		DeliveryFee:         deliveryFee,
		PartnerEarning:      partnerEarning,
		Status:              order.Status(dto.Status),
		PaymentMethod:       order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:       order.PaymentStatus(dto.PaymentStatus),
		ActualPaymentMethod: actualMethod,
		PaymentTxnRef:       dto.PaymentTxnRef,
		PaymentNotes:        dto.PaymentNotes,
		PaymentCompletedAt:  dto.PaymentCompletedAt,
		PlacedAt:            dto.PlacedAt,
		AssignedAt:          dto.AssignedAt,
		PickedUpAt:          dto.PickedUpAt,
		DeliveredAt:         dto.DeliveredAt,
		CancelledAt:         dto.CancelledAt,
		AssignedPartnerID:   partnerID,
		Version:             dto.Version,
	})
}
