package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type SPHandler struct {
	svc *service.SPService
}

func NewSPHandler(svc *service.SPService) *SPHandler {
	return &SPHandler{svc: svc}
}

// List GET /api/v1/sp?status=
func (h *SPHandler) List(c *gin.Context) {
	sps, err := h.svc.List(c.Request.Context(), entity.SPStatus(c.Query("status")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, sps)
}

// Get GET /api/v1/sp/:id
func (h *SPHandler) Get(c *gin.Context) {
	sp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, sp)
}

// Create POST /api/v1/sp
func (h *SPHandler) Create(c *gin.Context) {
	var req service.BuatSPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	sp, err := h.svc.BuatDraft(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, sp)
}

// Update PUT /api/v1/sp/:id
func (h *SPHandler) Update(c *gin.Context) {
	var req service.EditSPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	sp, err := h.svc.EditDraft(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, sp)
}

type kirimSPRequest struct {
	RollIDs []string `json:"roll_ids"`
}

// Kirim POST /api/v1/sp/:id/kirim
func (h *SPHandler) Kirim(c *gin.Context) {
	var req kirimSPRequest
	c.ShouldBindJSON(&req)
	sp, err := h.svc.KirimSP(c.Request.Context(), c.Param("id"), req.RollIDs, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, sp)
}

// Delete DELETE /api/v1/sp/:id
func (h *SPHandler) Delete(c *gin.Context) {
	if err := h.svc.HapusDraft(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}
