// README: Shared handler utilities: result envelopes and error mapping.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"velo/internal/types"
)

// The mutation endpoints all answer with a count/message envelope:
// success carries the affected row count (normally 1) and "Ok", failure
// carries count 0 and a message naming the cause. Creates add newId,
// ride finish adds price, the zone re-check adds park_id.

func okCount(c *gin.Context, count int64) {
	c.JSON(http.StatusOK, gin.H{"count": count, "message": "Ok"})
}

func okCreated(c *gin.Context, newID int64) {
	c.JSON(http.StatusCreated, gin.H{"count": 1, "newId": newID, "message": "Ok"})
}

func failUpdate(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"count": 0, "message": err.Error()})
}

func failCreate(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"count": 0, "newId": -1, "message": err.Error()})
}

func failBind(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"count": 0, "message": "malformed request body"})
}

// statusFor keeps the taxonomy visible at the edge: every recognized
// domain failure is a client error; anything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidState),
		errors.Is(err, types.ErrConstraint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getJSON renders a read result, mapping a missing entity to 404.
func getJSON(c *gin.Context, v any, err error) {
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// paramID parses a numeric path parameter; reports ok=false after
// writing the error response.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"count": 0, "message": "invalid " + name})
		return 0, false
	}
	return id, true
}
