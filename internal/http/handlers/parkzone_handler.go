// README: Parking zone CRUD handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velo/internal/modules/parkzone"
	"velo/internal/types"
)

type ParkZoneHandler struct {
	zone *parkzone.Service
}

func NewParkZoneHandler(svc *parkzone.Service) *ParkZoneHandler {
	return &ParkZoneHandler{zone: svc}
}

func (h *ParkZoneHandler) ListByCity(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	zones, err := h.zone.ListByCity(c.Request.Context(), cityID)
	getJSON(c, zones, err)
}

func (h *ParkZoneHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	z, err := h.zone.Get(c.Request.Context(), id)
	getJSON(c, z, err)
}

type locateReq struct {
	Lat float64 `form:"lat"`
	Lon float64 `form:"lon"`
}

// Locate reports which zone of the city contains the given point
// (park_id 0 = none). Reads fresh geometry, never the cache.
func (h *ParkZoneHandler) Locate(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	var req locateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		failBind(c)
		return
	}
	parkID, err := h.zone.LocateZone(c.Request.Context(), cityID, types.Point{Lat: req.Lat, Lon: req.Lon})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"count": 0, "park_id": 0, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 1, "park_id": parkID, "message": "Ok"})
}

func (h *ParkZoneHandler) Create(c *gin.Context) {
	var z parkzone.Zone
	if err := c.ShouldBind(&z); err != nil {
		failBind(c)
		return
	}
	id, err := h.zone.Add(c.Request.Context(), z)
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

func (h *ParkZoneHandler) Update(c *gin.Context) {
	var z parkzone.Zone
	if err := c.ShouldBind(&z); err != nil {
		failBind(c)
		return
	}
	if err := h.zone.Update(c.Request.Context(), z); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *ParkZoneHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.zone.Delete(c.Request.Context(), id); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
