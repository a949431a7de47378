// README: User CRUD handlers plus balance withdrawal.
package handlers

import (
	"github.com/gin-gonic/gin"

	"velo/internal/modules/user"
)

type UserHandler struct {
	user *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{user: svc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.user.List(c.Request.Context())
	getJSON(c, users, err)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.user.Get(c.Request.Context(), id)
	getJSON(c, u, err)
}

func (h *UserHandler) Create(c *gin.Context) {
	var u user.User
	if err := c.ShouldBind(&u); err != nil {
		failBind(c)
		return
	}
	id, err := h.user.Add(c.Request.Context(), u)
	if err != nil {
		failCreate(c, err)
		return
	}
	okCreated(c, id)
}

func (h *UserHandler) Update(c *gin.Context) {
	var u user.User
	if err := c.ShouldBind(&u); err != nil {
		failBind(c)
		return
	}
	if err := h.user.Update(c.Request.Context(), u); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

type withdrawReq struct {
	ID     int64   `form:"id" json:"id"`
	Amount float64 `form:"amount" json:"amount"`
}

// Withdraw debits the user's balance; a deposit is a negative
// withdrawal.
func (h *UserHandler) Withdraw(c *gin.Context) {
	var req withdrawReq
	if err := c.ShouldBind(&req); err != nil {
		failBind(c)
		return
	}
	if err := h.user.Withdraw(c.Request.Context(), req.ID, req.Amount); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.user.Delete(c.Request.Context(), id); err != nil {
		failUpdate(c, err)
		return
	}
	okCount(c, 1)
}
