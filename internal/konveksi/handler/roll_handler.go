package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type RollHandler struct {
	svc *service.RollService
}

func NewRollHandler(svc *service.RollService) *RollHandler {
	return &RollHandler{svc: svc}
}

// List GET /api/v1/rolls?status=
func (h *RollHandler) List(c *gin.Context) {
	rolls, err := h.svc.List(c.Request.Context(), entity.RollStatus(c.Query("status")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, rolls)
}

// Get GET /api/v1/rolls/:id
func (h *RollHandler) Get(c *gin.Context) {
	roll, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, roll)
}

// Create POST /api/v1/rolls
func (h *RollHandler) Create(c *gin.Context) {
	var req service.TerimaRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	roll, err := h.svc.TerimaRoll(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, roll)
}

// Delete DELETE /api/v1/rolls/:id
func (h *RollHandler) Delete(c *gin.Context) {
	if err := h.svc.HapusRoll(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}

type returManualRequest struct {
	Alasan string `json:"alasan"`
}

// ReturManual POST /api/v1/rolls/:id/retur
func (h *RollHandler) ReturManual(c *gin.Context) {
	var req returManualRequest
	c.ShouldBindJSON(&req)
	rs, err := h.svc.ReturManual(c.Request.Context(), c.Param("id"), req.Alasan, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, rs)
}

// TandaiKembali POST /api/v1/rolls/:id/kembali
func (h *RollHandler) TandaiKembali(c *gin.Context) {
	roll, err := h.svc.TandaiKembali(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, roll)
}

// Resolusi POST /api/v1/rolls/:id/resolusi
func (h *RollHandler) Resolusi(c *gin.Context) {
	var req service.ResolusiRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	roll, err := h.svc.Resolusi(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, roll)
}
