// README: Bike handlers: CRUD, list filters, telemetry, zone re-check,
// and the charging lifecycle endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velo/internal/modules/bike"
	"velo/internal/modules/charging"
)

type BikeHandler struct {
	bike     *bike.Service
	charging *charging.Service
}

func NewBikeHandler(bikeSvc *bike.Service, chargingSvc *charging.Service) *BikeHandler {
	return &BikeHandler{bike: bikeSvc, charging: chargingSvc}
}

func (h *BikeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.bike.Get(c.Request.Context(), id)
	getJSON(c, b, err)
}

func (h *BikeHandler) GetByUser(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	b, err := h.bike.GetByUser(c.Request.Context(), userID)
	getJSON(c, b, err)
}

func (h *BikeHandler) ListByCity(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	bikes, err := h.bike.ListByCity(c.Request.Context(), cityID)
	getJSON(c, bikes, err)
}

func (h *BikeHandler) ListByCityStatus(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	statusID, ok := paramID(c, "status_id")
	if !ok {
		return
	}
	bikes, err := h.bike.ListByCityStatus(c.Request.Context(), cityID, statusID)
	getJSON(c, bikes, err)
}

func (h *BikeHandler) ListByCityStation(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	bikes, err := h.bike.ListByCityStation(c.Request.Context(), cityID, stationID)
	getJSON(c, bikes, err)
}

func (h *BikeHandler) ListByCityPark(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	parkID, ok := paramID(c, "park_id")
	if !ok {
		return
	}
	bikes, err := h.bike.ListByCityPark(c.Request.Context(), cityID, parkID)
	getJSON(c, bikes, err)
}

// ListPositions serves the city map view (id, status, position only).
func (h *BikeHandler) ListPositions(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	positions, err := h.bike.ListPositions(c.Request.Context(), cityID)
	getJSON(c, positions, err)
}

func (h *BikeHandler) Create(c *gin.Context) {
	var b bike.Bike
	if err := c.ShouldBind(&b); err != nil {
		failBind(c)
		return
	}
	id, err := h.bike.Add(c.Request.Context(), b)
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

func (h *BikeHandler) Update(c *gin.Context) {
	var b bike.Bike
	if err := c.ShouldBind(&b); err != nil {
		failBind(c)
		return
	}
	if err := h.bike.Update(c.Request.Context(), b); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

type bikeIDReq struct {
	ID int64 `form:"id" json:"id"`
}

// CheckParkZone re-evaluates the bike's zone from its current position
// and reports the resulting park_id.
func (h *BikeHandler) CheckParkZone(c *gin.Context) {
	var req bikeIDReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	parkID, err := h.bike.CheckParkZone(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"count": 0, "park_id": 0, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 1, "park_id": parkID, "message": "Ok"})
}

type chargeReq struct {
	BikeID    int64 `form:"bike_id" json:"bike_id"`
	StationID int64 `form:"station_id" json:"station_id"`
}

func (h *BikeHandler) StartCharge(c *gin.Context) {
	var req chargeReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	if err := h.charging.Start(c.Request.Context(), req.BikeID, req.StationID); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *BikeHandler) StopCharge(c *gin.Context) {
	var req chargeReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	if err := h.charging.Stop(c.Request.Context(), req.BikeID); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

type bikeAssignReq struct {
	ID        int64 `form:"id" json:"id"`
	UserID    int64 `form:"user_id" json:"user_id"`
	StatusID  int64 `form:"status_id" json:"status_id"`
	StationID int64 `form:"station_id" json:"station_id"`
	ParkID    int64 `form:"park_id" json:"park_id"`
}

func (h *BikeHandler) UpdateUserStatusStationPark(c *gin.Context) {
	var req bikeAssignReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	err := h.bike.UpdateUserStatusStationPark(c.Request.Context(),
		req.ID, req.UserID, req.StatusID, req.StationID, req.ParkID)
	if err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

type bikeTelemetryReq struct {
	ID      int64   `form:"id" json:"id"`
	Lat     float64 `form:"lat" json:"lat"`
	Lon     float64 `form:"lon" json:"lon"`
	Speed   float64 `form:"speed" json:"speed"`
	Battery float64 `form:"battery" json:"battery"`
}

// UpdatePosSpeedBatt is the telemetry write path. Callers are expected
// to follow up with CheckParkZone to keep park_id in sync.
func (h *BikeHandler) UpdatePosSpeedBatt(c *gin.Context) {
	var req bikeTelemetryReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	err := h.bike.UpdatePosSpeedBatt(c.Request.Context(),
		req.ID, req.Lat, req.Lon, req.Speed, req.Battery)
	if err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *BikeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.bike.Delete(c.Request.Context(), id); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
