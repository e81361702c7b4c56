// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the delivery partner domain aggregate,
// handling the conversion between domain entities and database representations.
package partnerrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// Maps partner domain entities to relational database tables with indexing on
// the zone for zone-scoped lookups.
type PartnerDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Phone              string    `gorm:"type:varchar(20)"`
	ZoneCode           string    `gorm:"type:varchar(10);not null;index"`
	VerificationStatus string    `gorm:"type:varchar(10);not null"`
	Active             bool      `gorm:"not null"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(p *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:                 p.ID().Bytes(),
		Name:               p.Name(),
		Phone:              p.Phone(),
		ZoneCode:           p.ZoneCode().String(),
		VerificationStatus: p.VerificationStatus().String(),
		Active:             p.IsActive(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the aggregate including verification state using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zone, err := kernel.NewZoneCode(dto.ZoneCode)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Phone,
		zone,
		partner.VerificationStatus(dto.VerificationStatus),
		dto.Active,
	)
}
