// README: Occupancy counter maintenance when a bike changes zones.
package parkzone

import "context"

// TrackerStore is the slice of a store Reassign needs: both methods must
// run inside the caller's transaction so counters and the bike's cached
// park_id move together.
type TrackerStore interface {
	AddZoneBikes(ctx context.Context, zoneID int64, delta int64) error
	SetBikeParkZone(ctx context.Context, bikeID, parkID int64) error
}

// Reassign moves a bike from oldZoneID to newZoneID: decrement the old
// zone's counter, increment the new one's, and repoint the bike's
// park_id. Zone id 0 means "no zone" and skips the counter touch on that
// side. Equal ids are a no-op. Reassign trusts the caller to have decided
// newZoneID (normally via Locate); it only keeps the counters consistent.
func Reassign(ctx context.Context, s TrackerStore, bikeID, oldZoneID, newZoneID int64) error {
	if oldZoneID == newZoneID {
		return nil
	}
	if oldZoneID != 0 {
		if err := s.AddZoneBikes(ctx, oldZoneID, -1); err != nil {
			return err
		}
	}
	if newZoneID != 0 {
		if err := s.AddZoneBikes(ctx, newZoneID, 1); err != nil {
			return err
		}
	}
	return s.SetBikeParkZone(ctx, bikeID, newZoneID)
}
