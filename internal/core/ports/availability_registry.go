package ports

import (
	"grocery/internal/core/domain/model/kernel"
)

// AvailabilityRegistry tracks which partners are currently willing to accept
// orders, per zone. It is ephemeral, process-local state rebuilt from
// partner-initiated heartbeats after a restart, and offers eventual
// consistency only: a partner may appear briefly available after going
// offline. Assignment correctness is re-validated at commit time, so the
// registry need not be strongly consistent.
type AvailabilityRegistry interface {
	// SetAvailable adds or removes the partner from the zone's availability
	// set. Adding refreshes the partner's liveness timestamp.
	SetAvailable(partnerID kernel.UUID, zone kernel.ZoneCode, available bool)

	// Heartbeat refreshes the partner's liveness timestamp without changing
	// membership. No-op if the partner is not currently a member.
	Heartbeat(partnerID kernel.UUID)

	// ListAvailable returns the partners available in the zone whose liveness
	// timestamp is within the staleness window. Stale entries are treated as
	// absent and evicted opportunistically.
	ListAvailable(zone kernel.ZoneCode) []kernel.UUID
}
