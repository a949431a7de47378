// README: Occupancy reassignment tests over an in-memory tracker store.
package parkzone

import (
	"context"
	"testing"
)

type fakeTrackerStore struct {
	counters map[int64]int64
	parkIDs  map[int64]int64
}

func newFakeTrackerStore() *fakeTrackerStore {
	return &fakeTrackerStore{
		counters: map[int64]int64{},
		parkIDs:  map[int64]int64{},
	}
}

func (f *fakeTrackerStore) AddZoneBikes(_ context.Context, zoneID int64, delta int64) error {
	f.counters[zoneID] += delta
	return nil
}

func (f *fakeTrackerStore) SetBikeParkZone(_ context.Context, bikeID, parkID int64) error {
	f.parkIDs[bikeID] = parkID
	return nil
}

func TestReassignMovesCounters(t *testing.T) {
	ctx := context.Background()
	store := newFakeTrackerStore()
	store.counters[1] = 3
	store.counters[2] = 5

	if err := Reassign(ctx, store, 10, 1, 2); err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if store.counters[1] != 2 || store.counters[2] != 6 {
		t.Errorf("counters = %d/%d, want 2/6", store.counters[1], store.counters[2])
	}
	if store.parkIDs[10] != 2 {
		t.Errorf("park_id = %d, want 2", store.parkIDs[10])
	}
}

func TestReassignFromNowhere(t *testing.T) {
	ctx := context.Background()
	store := newFakeTrackerStore()

	if err := Reassign(ctx, store, 10, 0, 7); err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if store.counters[7] != 1 {
		t.Errorf("counter = %d, want 1", store.counters[7])
	}
	if _, touched := store.counters[0]; touched {
		t.Error("zone 0 must never be counted")
	}
}

func TestReassignToNowhere(t *testing.T) {
	ctx := context.Background()
	store := newFakeTrackerStore()
	store.counters[4] = 1
	store.parkIDs[10] = 4

	if err := Reassign(ctx, store, 10, 4, 0); err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if store.counters[4] != 0 {
		t.Errorf("counter = %d, want 0", store.counters[4])
	}
	if store.parkIDs[10] != 0 {
		t.Errorf("park_id = %d, want 0", store.parkIDs[10])
	}
}

func TestReassignSameZoneNoOp(t *testing.T) {
	ctx := context.Background()
	store := newFakeTrackerStore()
	store.counters[4] = 2
	store.parkIDs[10] = 4

	if err := Reassign(ctx, store, 10, 4, 4); err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if store.counters[4] != 2 {
		t.Errorf("counter = %d, want unchanged 2", store.counters[4])
	}
}
