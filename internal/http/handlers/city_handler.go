// README: City CRUD handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"velo/internal/modules/city"
)

type CityHandler struct {
	city *city.Service
}

func NewCityHandler(svc *city.Service) *CityHandler {
	return &CityHandler{city: svc}
}

func (h *CityHandler) List(c *gin.Context) {
	cities, err := h.city.List(c.Request.Context())
	getJSON(c, cities, err)
}

func (h *CityHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ct, err := h.city.Get(c.Request.Context(), id)
	getJSON(c, ct, err)
}

func (h *CityHandler) Create(c *gin.Context) {
	var ct city.City
	if err := c.ShouldBind(&ct); err != nil {
		failBind(c)
		return
	}
	id, err := h.city.Add(c.Request.Context(), ct)
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

func (h *CityHandler) Update(c *gin.Context) {
	var ct city.City
	if err := c.ShouldBind(&ct); err != nil {
		failBind(c)
		return
	}
	if err := h.city.Update(c.Request.Context(), ct); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *CityHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.city.Delete(c.Request.Context(), id); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
