// README: Charging station CRUD handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"velo/internal/modules/station"
)

type StationHandler struct {
	station *station.Service
}

func NewStationHandler(svc *station.Service) *StationHandler {
	return &StationHandler{station: svc}
}

func (h *StationHandler) ListByCity(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	stations, err := h.station.ListByCity(c.Request.Context(), cityID)
	getJSON(c, stations, err)
}

func (h *StationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	st, err := h.station.Get(c.Request.Context(), id)
	getJSON(c, st, err)
}

func (h *StationHandler) Create(c *gin.Context) {
	var st station.Station
	if err := c.ShouldBind(&st); err != nil {
		failBind(c)
		return
	}
	id, err := h.station.Add(c.Request.Context(), st)
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

func (h *StationHandler) Update(c *gin.Context) {
	var st station.Station
	if err := c.ShouldBind(&st); err != nil {
		failBind(c)
		return
	}
	if err := h.station.Update(c.Request.Context(), st); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *StationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.station.Delete(c.Request.Context(), id); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
