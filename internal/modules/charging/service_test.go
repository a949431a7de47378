// README: Charging lifecycle tests over an in-memory dock store.
package charging

import (
	"context"
	"errors"
	"testing"

	"velo/internal/modules/bike"
	"velo/internal/types"
)

type chargeState struct {
	bikes    map[int64]BikeDock
	stations map[int64]int64 // id -> num_free
}

func (st *chargeState) clone() *chargeState {
	cp := &chargeState{
		bikes:    make(map[int64]BikeDock, len(st.bikes)),
		stations: make(map[int64]int64, len(st.stations)),
	}
	for k, v := range st.bikes {
		cp.bikes[k] = v
	}
	for k, v := range st.stations {
		cp.stations[k] = v
	}
	return cp
}

type fakeDockStore struct {
	state *chargeState
}

func newFakeDockStore() *fakeDockStore {
	return &fakeDockStore{state: &chargeState{
		bikes:    map[int64]BikeDock{},
		stations: map[int64]int64{},
	}}
}

func (f *fakeDockStore) WithTx(_ context.Context, fn func(Store) error) error {
	cp := f.state.clone()
	if err := fn(&fakeDockStore{state: cp}); err != nil {
		return err
	}
	*f.state = *cp
	return nil
}

func (f *fakeDockStore) GetBikeDock(_ context.Context, bikeID int64) (BikeDock, error) {
	b, ok := f.state.bikes[bikeID]
	if !ok {
		return BikeDock{}, types.NotFound("bike_id")
	}
	return b, nil
}

func (f *fakeDockStore) AddStationFree(_ context.Context, stationID int64, delta int64) (bool, error) {
	if _, ok := f.state.stations[stationID]; !ok {
		return false, nil
	}
	f.state.stations[stationID] += delta
	return true, nil
}

func (f *fakeDockStore) SetBikeCharging(_ context.Context, bikeID, stationID int64) error {
	b := f.state.bikes[bikeID]
	b.StatusID = bike.StatusCharging
	b.StationID = stationID
	f.state.bikes[bikeID] = b
	return nil
}

func (f *fakeDockStore) ClearBikeCharging(_ context.Context, bikeID int64) error {
	b := f.state.bikes[bikeID]
	b.StatusID = bike.StatusIdle
	b.StationID = 0
	f.state.bikes[bikeID] = b
	return nil
}

func dockFixture() *fakeDockStore {
	store := newFakeDockStore()
	store.state.bikes[1] = BikeDock{ID: 1, StatusID: bike.StatusIdle}
	store.state.stations[3] = 5
	return store
}

func TestStartCharging(t *testing.T) {
	ctx := context.Background()
	store := dockFixture()
	svc := NewService(store)

	if err := svc.Start(ctx, 1, 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	b := store.state.bikes[1]
	if b.StatusID != bike.StatusCharging || b.StationID != 3 {
		t.Errorf("bike status/station = %d/%d, want %d/3", b.StatusID, b.StationID, bike.StatusCharging)
	}
	if got := store.state.stations[3]; got != 4 {
		t.Errorf("num_free = %d, want 4", got)
	}
}

func TestStartChargingTwice(t *testing.T) {
	ctx := context.Background()
	store := dockFixture()
	svc := NewService(store)

	if err := svc.Start(ctx, 1, 3); err != nil {
		t.Fatalf("first start: %v", err)
	}
	err := svc.Start(ctx, 1, 3)
	if !errors.Is(err, types.ErrInvalidState) {
		t.Fatalf("second start err = %v, want ErrInvalidState", err)
	}
	// The rejected second start must not eat another slot.
	if got := store.state.stations[3]; got != 4 {
		t.Errorf("num_free = %d, want 4 after one decrement", got)
	}
}

func TestStartChargingUnknownStation(t *testing.T) {
	ctx := context.Background()
	store := dockFixture()
	svc := NewService(store)

	err := svc.Start(ctx, 1, 99)
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if got := store.state.bikes[1].StatusID; got != bike.StatusIdle {
		t.Errorf("bike status = %d, want idle after rollback", got)
	}
}

func TestStartChargingUnknownBike(t *testing.T) {
	ctx := context.Background()
	svc := NewService(dockFixture())

	err := svc.Start(ctx, 42, 3)
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStopCharging(t *testing.T) {
	ctx := context.Background()
	store := dockFixture()
	svc := NewService(store)

	if err := svc.Start(ctx, 1, 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Stop(ctx, 1); err != nil {
		t.Fatalf("stop: %v", err)
	}

	b := store.state.bikes[1]
	if b.StatusID != bike.StatusIdle || b.StationID != 0 {
		t.Errorf("bike status/station = %d/%d, want idle/0", b.StatusID, b.StationID)
	}
	if got := store.state.stations[3]; got != 5 {
		t.Errorf("num_free = %d, want restored 5", got)
	}
}

func TestStopChargingNotCharging(t *testing.T) {
	ctx := context.Background()
	store := dockFixture()
	svc := NewService(store)

	err := svc.Stop(ctx, 1)
	if !errors.Is(err, types.ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
	if got := store.state.stations[3]; got != 5 {
		t.Errorf("num_free = %d, want unchanged 5", got)
	}
}

// num_free has no floor; overbooked stations simply go negative and
// recover as bikes undock.
func TestStartChargingNoFreeSlots(t *testing.T) {
	ctx := context.Background()
	store := dockFixture()
	store.state.stations[3] = 0
	store.state.bikes[2] = BikeDock{ID: 2, StatusID: bike.StatusIdle}
	svc := NewService(store)

	if err := svc.Start(ctx, 2, 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := store.state.stations[3]; got != -1 {
		t.Errorf("num_free = %d, want -1", got)
	}
}
