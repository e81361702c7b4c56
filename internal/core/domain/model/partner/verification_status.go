package partner

// VerificationStatus is the onboarding approval state of a delivery partner.
// Only verified partners may be assigned work.
type VerificationStatus string

const (
	// VerificationPending means onboarding review has not completed.
	VerificationPending VerificationStatus = "PENDING"

	// VerificationVerified means the partner passed onboarding review.
	VerificationVerified VerificationStatus = "VERIFIED"

	// VerificationRejected means the partner failed onboarding review.
	VerificationRejected VerificationStatus = "REJECTED"
)

// IsValid reports whether the status is one of the defined verification states.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

func (s VerificationStatus) String() string {
	return string(s)
}
