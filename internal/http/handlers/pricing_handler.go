// README: Pricing CRUD handlers; rows are keyed by city.
package handlers

import (
	"github.com/gin-gonic/gin"

	"velo/internal/modules/pricing"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

func (h *PricingHandler) GetByCity(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	p, err := h.pricing.GetByCity(c.Request.Context(), cityID)
	getJSON(c, p, err)
}

func (h *PricingHandler) Create(c *gin.Context) {
	var p pricing.Pricing
	if err := c.ShouldBind(&p); err != nil {
		failBind(c)
		return
	}
	id, err := h.pricing.Add(c.Request.Context(), p)
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

func (h *PricingHandler) Update(c *gin.Context) {
	var p pricing.Pricing
	if err := c.ShouldBind(&p); err != nil {
		failBind(c)
		return
	}
	if err := h.pricing.UpdateByCity(c.Request.Context(), p); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *PricingHandler) Delete(c *gin.Context) {
	cityID, ok := paramID(c, "city_id")
	if !ok {
		return
	}
	if err := h.pricing.DeleteByCity(c.Request.Context(), cityID); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
