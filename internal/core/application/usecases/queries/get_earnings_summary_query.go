package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrGetEarningsSummaryQueryIsNotConstructed = errors.New(
	"GetEarningsSummaryQuery must be created via NewGetEarningsSummaryQuery constructor",
)

// GetEarningsSummaryQuery sums a partner's earnings over delivered orders
// within a time window.
type GetEarningsSummaryQuery struct {
	partnerID kernel.UUID
	from      time.Time
	to        time.Time

	guard guard.ConstructorGuard
}

// NewGetEarningsSummaryQuery creates a validated query. The window is
// inclusive on both ends and from must not be after to.
func NewGetEarningsSummaryQuery(partnerID kernel.UUID, from, to time.Time) (GetEarningsSummaryQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetEarningsSummaryQuery{}, err
	}
	if from.IsZero() {
		return GetEarningsSummaryQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetEarningsSummaryQuery{}, errs.NewValueIsRequiredError("to")
	}
	if from.After(to) {
		return GetEarningsSummaryQuery{}, errs.NewValueIsInvalidError("from")
	}

	return GetEarningsSummaryQuery{
		partnerID: partnerID,
		from:      from,
		to:        to,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the partner whose earnings are summarized.
func (q *GetEarningsSummaryQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// From returns the inclusive start of the window.
func (q *GetEarningsSummaryQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the window.
func (q *GetEarningsSummaryQuery) To() time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q *GetEarningsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsSummaryQueryIsNotConstructed)
}

// GetEarningsSummaryQueryResponse aggregates delivered orders in the window.
type GetEarningsSummaryQueryResponse struct {
	PartnerID      kernel.UUID
	DeliveredCount int64
	TotalEarnings  float64
}
