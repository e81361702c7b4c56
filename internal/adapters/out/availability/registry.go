// Package availability implements the in-process availability registry:
// the per-zone set of delivery partners currently willing to accept work.
//
// The registry is ephemeral. It is rebuilt from partner-initiated
// heartbeats after a restart and offers eventual consistency only; the
// assignment engine re-validates eligibility at commit time. State lives in
// lock-free concurrent maps, so heartbeats and assignment reads from many
// goroutines never contend on a global lock. Staleness is evaluated lazily on
// read; there is no background sweep.
package availability

import (
	"time"

	"grocery/internal/core/domain/model/kernel"

	"github.com/puzpuzpuz/xsync/v4"
)

// DefaultStaleAfter is the liveness window: a partner with no heartbeat for
// this long is treated as absent.
const DefaultStaleAfter = 5 * time.Minute

// Registry is the process-local implementation of ports.AvailabilityRegistry.
// Construct once per process and pass by reference to the assignment engine
// and the lifecycle handlers; do not share across processes.
type Registry struct {
	staleAfter time.Duration
	now        func() time.Time

	// zones maps a zone to the partners available in it with their last-seen time.
	zones *xsync.Map[kernel.ZoneCode, *xsync.Map[kernel.UUID, time.Time]]

	// partnerZones indexes each available partner's zone for O(1) heartbeats.
	partnerZones *xsync.Map[kernel.UUID, kernel.ZoneCode]
}

// NewRegistry creates a registry with the given staleness window.
// Pass DefaultStaleAfter unless a test needs a shorter window.
func NewRegistry(staleAfter time.Duration) *Registry {
	return NewRegistryWithClock(staleAfter, time.Now)
}

// NewRegistryWithClock creates a registry with an injected clock.
// Used by tests to simulate the passage of time.
func NewRegistryWithClock(staleAfter time.Duration, now func() time.Time) *Registry {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Registry{
		staleAfter:   staleAfter,
		now:          now,
		zones:        xsync.NewMap[kernel.ZoneCode, *xsync.Map[kernel.UUID, time.Time]](),
		partnerZones: xsync.NewMap[kernel.UUID, kernel.ZoneCode](),
	}
}

// SetAvailable adds or removes the partner from the zone's availability set.
// Adding refreshes the partner's last-seen timestamp to now.
func (r *Registry) SetAvailable(partnerID kernel.UUID, zone kernel.ZoneCode, available bool) {
	if !available {
		if members, ok := r.zones.Load(zone); ok {
			members.Delete(partnerID)
		}
		r.dropIndexEntry(partnerID, zone)
		return
	}

	members := r.zoneMembers(zone)
	members.Store(partnerID, r.now())
	r.partnerZones.Store(partnerID, zone)
}

// Heartbeat refreshes the partner's last-seen timestamp without changing
// membership. A heartbeat from a partner that is not currently available in
// any zone is a no-op; the partner must go online via SetAvailable first.
func (r *Registry) Heartbeat(partnerID kernel.UUID) {
	zone, ok := r.partnerZones.Load(partnerID)
	if !ok {
		return
	}
	members, ok := r.zones.Load(zone)
	if !ok {
		return
	}
	if _, member := members.Load(partnerID); member {
		members.Store(partnerID, r.now())
	}
}

// ListAvailable returns the partners available in the zone whose last-seen
// timestamp is within the staleness window. Stale entries are evicted as they
// are encountered.
func (r *Registry) ListAvailable(zone kernel.ZoneCode) []kernel.UUID {
	members, ok := r.zones.Load(zone)
	if !ok {
		return nil
	}

	cutoff := r.now().Add(-r.staleAfter)
	available := make([]kernel.UUID, 0)
	members.Range(func(partnerID kernel.UUID, lastSeen time.Time) bool {
		if lastSeen.Before(cutoff) {
			members.Delete(partnerID)
			r.dropIndexEntry(partnerID, zone)
			return true
		}
		available = append(available, partnerID)
		return true
	})

	return available
}

// dropIndexEntry removes the partner's zone index entry only if it still
// points at the given zone. A partner that went online in a new zone keeps
// the new index entry when the old zone's removal races in.
func (r *Registry) dropIndexEntry(partnerID kernel.UUID, zone kernel.ZoneCode) {
	r.partnerZones.Compute(partnerID, func(current kernel.ZoneCode, loaded bool) (kernel.ZoneCode, xsync.ComputeOp) {
		if loaded && current.IsEqual(zone) {
			return current, xsync.DeleteOp
		}
		return current, xsync.CancelOp
	})
}

func (r *Registry) zoneMembers(zone kernel.ZoneCode) *xsync.Map[kernel.UUID, time.Time] {
	if members, ok := r.zones.Load(zone); ok {
		return members
	}
	members, _ := r.zones.LoadOrStore(zone, xsync.NewMap[kernel.UUID, time.Time]())
	return members
}
