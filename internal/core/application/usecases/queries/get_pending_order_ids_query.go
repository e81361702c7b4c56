package queries

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrGetPendingOrderIDsQueryIsNotConstructed = errors.New(
	"GetPendingOrderIDsQuery must be created via NewGetPendingOrderIDsQuery constructor",
)

// GetPendingOrderIDsQuery lists the identifiers of every order still waiting
// for a partner, across all zones. Used by the automatic assignment sweep.
type GetPendingOrderIDsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrderIDsQuery creates the query.
func NewGetPendingOrderIDsQuery() GetPendingOrderIDsQuery {
	return GetPendingOrderIDsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q *GetPendingOrderIDsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrderIDsQueryIsNotConstructed)
}
