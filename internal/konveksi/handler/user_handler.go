package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, users)
}

// Create POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req service.BuatUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	user, err := h.svc.BuatUser(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, user)
}

// Update PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UbahUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	user, err := h.svc.UbahUser(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, user)
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.HapusUser(c.Request.Context(), c.Param("id"), GetUserID(c), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}
