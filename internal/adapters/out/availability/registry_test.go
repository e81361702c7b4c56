package availability_test

import (
	"testing"
	"time"

	"grocery/internal/adapters/out/availability"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for simulating heartbeat gaps.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func zone(t *testing.T, code string) kernel.ZoneCode {
	t.Helper()
	z, err := kernel.NewZoneCode(code)
	require.NoError(t, err)
	return z
}

func TestRegistry_SetAvailable(t *testing.T) {
	t.Run("available partner is listed in its zone", func(t *testing.T) {
		registry := availability.NewRegistry(availability.DefaultStaleAfter)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")

		registry.SetAvailable(partnerID, z, true)

		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(z))
	})

	t.Run("partner is not listed in other zones", func(t *testing.T) {
		registry := availability.NewRegistry(availability.DefaultStaleAfter)
		registry.SetAvailable(kernel.NewUUID(), zone(t, "560001"), true)

		assert.Empty(t, registry.ListAvailable(zone(t, "560002")))
	})

	t.Run("going offline removes the partner", func(t *testing.T) {
		registry := availability.NewRegistry(availability.DefaultStaleAfter)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")
		registry.SetAvailable(partnerID, z, true)

		registry.SetAvailable(partnerID, z, false)

		assert.Empty(t, registry.ListAvailable(z))
	})

	t.Run("going offline while never online is a no-op", func(t *testing.T) {
		registry := availability.NewRegistry(availability.DefaultStaleAfter)

		registry.SetAvailable(kernel.NewUUID(), zone(t, "560001"), false)

		assert.Empty(t, registry.ListAvailable(zone(t, "560001")))
	})

	t.Run("lists several partners in the same zone", func(t *testing.T) {
		registry := availability.NewRegistry(availability.DefaultStaleAfter)
		z := zone(t, "560001")
		first, second := kernel.NewUUID(), kernel.NewUUID()

		registry.SetAvailable(first, z, true)
		registry.SetAvailable(second, z, true)

		listed := registry.ListAvailable(z)
		assert.Len(t, listed, 2)
		assert.Contains(t, listed, first)
		assert.Contains(t, listed, second)
	})
}

func TestRegistry_Staleness(t *testing.T) {
	t.Run("partner without heartbeats goes stale", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")
		registry.SetAvailable(partnerID, z, true)

		clock.Advance(availability.DefaultStaleAfter + time.Second)

		assert.Empty(t, registry.ListAvailable(z))
	})

	t.Run("partner within the window stays listed", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")
		registry.SetAvailable(partnerID, z, true)

		clock.Advance(availability.DefaultStaleAfter - time.Second)

		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(z))
	})

	t.Run("heartbeat keeps the partner alive", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")
		registry.SetAvailable(partnerID, z, true)

		clock.Advance(4 * time.Minute)
		registry.Heartbeat(partnerID)
		clock.Advance(4 * time.Minute)

		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(z))
	})

	t.Run("heartbeat from an offline partner does not add them", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()

		registry.Heartbeat(partnerID)

		assert.Empty(t, registry.ListAvailable(zone(t, "560001")))
	})

	t.Run("stale entries are evicted so a later heartbeat is a no-op", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")
		registry.SetAvailable(partnerID, z, true)

		clock.Advance(availability.DefaultStaleAfter + time.Second)
		require.Empty(t, registry.ListAvailable(z))

		registry.Heartbeat(partnerID)

		assert.Empty(t, registry.ListAvailable(z))
	})

	t.Run("only stale partners are dropped", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		z := zone(t, "560001")
		stale, fresh := kernel.NewUUID(), kernel.NewUUID()
		registry.SetAvailable(stale, z, true)

		clock.Advance(3 * time.Minute)
		registry.SetAvailable(fresh, z, true)
		clock.Advance(3 * time.Minute)

		assert.Equal(t, []kernel.UUID{fresh}, registry.ListAvailable(z))
	})

	t.Run("zero window falls back to the default", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(0, clock.Now)
		partnerID := kernel.NewUUID()
		z := zone(t, "560001")
		registry.SetAvailable(partnerID, z, true)

		clock.Advance(time.Minute)

		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(z))
	})
}

func TestRegistry_ZoneChange(t *testing.T) {
	t.Run("going online in a new zone leaves the old zone", func(t *testing.T) {
		registry := availability.NewRegistry(availability.DefaultStaleAfter)
		partnerID := kernel.NewUUID()
		oldZone, newZone := zone(t, "560001"), zone(t, "560002")
		registry.SetAvailable(partnerID, oldZone, true)

		registry.SetAvailable(partnerID, newZone, true)
		registry.SetAvailable(partnerID, oldZone, false)

		assert.Empty(t, registry.ListAvailable(oldZone))
		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(newZone))
	})

	t.Run("removal from the old zone keeps heartbeats routed to the new zone", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()
		oldZone, newZone := zone(t, "560001"), zone(t, "560002")

		registry.SetAvailable(partnerID, oldZone, true)
		registry.SetAvailable(partnerID, newZone, true)
		registry.SetAvailable(partnerID, oldZone, false)

		clock.Advance(4 * time.Minute)
		registry.Heartbeat(partnerID)
		clock.Advance(4 * time.Minute)

		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(newZone))
	})

	t.Run("stale eviction in the old zone does not unregister the new zone", func(t *testing.T) {
		clock := newFakeClock()
		registry := availability.NewRegistryWithClock(availability.DefaultStaleAfter, clock.Now)
		partnerID := kernel.NewUUID()
		oldZone, newZone := zone(t, "560001"), zone(t, "560002")

		registry.SetAvailable(partnerID, oldZone, true)
		clock.Advance(4 * time.Minute)
		registry.SetAvailable(partnerID, newZone, true)

		// The old zone entry went stale; listing it evicts the leftover member.
		clock.Advance(2 * time.Minute)
		assert.Empty(t, registry.ListAvailable(oldZone))

		registry.Heartbeat(partnerID)
		clock.Advance(4 * time.Minute)
		assert.Equal(t, []kernel.UUID{partnerID}, registry.ListAvailable(newZone))
	})
}
