// README: Ride handlers: reads plus the start/finish lifecycle endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velo/internal/modules/ride"
)

type RideHandler struct {
	ride *ride.Service
}

func NewRideHandler(svc *ride.Service) *RideHandler {
	return &RideHandler{ride: svc}
}

func (h *RideHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := h.ride.Get(c.Request.Context(), id)
	getJSON(c, r, err)
}

func (h *RideHandler) ListByUser(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	rides, err := h.ride.ListByUser(c.Request.Context(), userID)
	getJSON(c, rides, err)
}

func (h *RideHandler) ListByBike(c *gin.Context) {
	bikeID, ok := paramID(c, "bike_id")
	if !ok {
		return
	}
	rides, err := h.ride.ListByBike(c.Request.Context(), bikeID)
	getJSON(c, rides, err)
}

type startRideReq struct {
	UserID int64 `form:"user_id" json:"user_id"`
	BikeID int64 `form:"bike_id" json:"bike_id"`
}

func (h *RideHandler) Start(c *gin.Context) {
	var req startRideReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	id, err := h.ride.Start(c.Request.Context(), ride.StartCommand{
		UserID: req.UserID,
		BikeID: req.BikeID,
	})
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

type finishRideReq struct {
	UserID int64 `form:"user_id" json:"user_id"`
}

// Finish closes the user's open ride and reports the computed price.
func (h *RideHandler) Finish(c *gin.Context) {
	var req finishRideReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	price, err := h.ride.Finish(c.Request.Context(), ride.FinishCommand{UserID: req.UserID})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"count": 0, "price": 0, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 1, "price": price, "message": "Ok"})
}

func (h *RideHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.ride.Delete(c.Request.Context(), id); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
