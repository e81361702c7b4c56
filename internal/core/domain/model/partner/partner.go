package partner

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// MaxActiveOrders is the hard capacity cap: the number of orders a partner
// may carry in Assigned, PickedUp or OutForDelivery status at the same time.
const MaxActiveOrders = 2

// Domain errors for partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner or RestorePartner")
)

// Partner represents a delivery agent in the system. It is an aggregate root
// that manages partner identity, the operating zone, onboarding verification
// and the active/inactive flag.
//
// Business rules:
//   - Partner must have a valid UUID, non-empty name and a valid zone
//   - New partners start in PENDING verification and inactive
//   - Only VERIFIED, active partners may accept orders
//
// The partner's active order count is not stored here: it is derived from the
// order store at decision time so it is always consistent with the outcome of
// order transitions.
type Partner struct {
	id                 kernel.UUID
	name               string
	phone              string
	zoneCode           kernel.ZoneCode
	verificationStatus VerificationStatus
	active             bool
	guard              guard.ConstructorGuard
}

// NewPartner creates a newly onboarded partner in PENDING verification,
// inactive until verification completes and the partner goes online.
func NewPartner(id kernel.UUID, name, phone string, zoneCode kernel.ZoneCode) (*Partner, error) {
	p := &Partner{
		verificationStatus: VerificationPending,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setZoneCode(zoneCode),
	); err != nil {
		return nil, err
	}
	p.phone = phone

	return p, nil
}

// RestorePartner reconstructs a partner aggregate from persistent storage.
func RestorePartner(
	id kernel.UUID,
	name, phone string,
	zoneCode kernel.ZoneCode,
	verificationStatus VerificationStatus,
	active bool,
) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setZoneCode(zoneCode),
		p.setVerificationStatus(verificationStatus),
	); err != nil {
		return nil, err
	}
	p.phone = phone
	p.active = active

	return p, nil
}

// Validate ensures the Partner instance was properly constructed.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Phone returns the partner's contact number.
func (p *Partner) Phone() string {
	return p.phone
}

// ZoneCode returns the partner's assigned operating area.
func (p *Partner) ZoneCode() kernel.ZoneCode {
	return p.zoneCode
}

// VerificationStatus returns the onboarding approval state.
func (p *Partner) VerificationStatus() VerificationStatus {
	return p.verificationStatus
}

// IsActive reports whether the partner is currently working.
func (p *Partner) IsActive() bool {
	return p.active
}

// CanAcceptOrders reports whether the partner is eligible for assignment:
// verified and active. Capacity is checked separately against the order store.
func (p *Partner) CanAcceptOrders() bool {
	return p.verificationStatus == VerificationVerified && p.active
}

// Verify marks the partner as having passed onboarding review.
func (p *Partner) Verify() {
	p.verificationStatus = VerificationVerified
}

// Reject marks the partner as having failed onboarding review and deactivates them.
func (p *Partner) Reject() {
	p.verificationStatus = VerificationRejected
	p.active = false
}

// SetActive toggles whether the partner is currently working.
func (p *Partner) SetActive(active bool) {
	p.active = active
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setZoneCode(zoneCode kernel.ZoneCode) error {
	if err := zoneCode.Validate(); err != nil {
		return err
	}
	p.zoneCode = zoneCode
	return nil
}

func (p *Partner) setVerificationStatus(s VerificationStatus) error {
	if !s.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("verificationStatus",
			fmt.Errorf("%q is not a valid verification status", string(s)))
	}
	p.verificationStatus = s
	return nil
}
