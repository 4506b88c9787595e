package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type PenerimaanHandler struct {
	svc *service.PenerimaanService
}

func NewPenerimaanHandler(svc *service.PenerimaanService) *PenerimaanHandler {
	return &PenerimaanHandler{svc: svc}
}

// List GET /api/v1/penerimaan?status=
func (h *PenerimaanHandler) List(c *gin.Context) {
	pnrs, err := h.svc.List(c.Request.Context(), entity.PenerimaanStatus(c.Query("status")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, pnrs)
}

// Get GET /api/v1/penerimaan/:id
func (h *PenerimaanHandler) Get(c *gin.Context) {
	pnr, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, pnr)
}

// Create POST /api/v1/penerimaan
func (h *PenerimaanHandler) Create(c *gin.Context) {
	var req service.TerimaBarangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	pnr, err := h.svc.TerimaBarang(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, pnr)
}

type qcRequest struct {
	Results []service.QCResultRequest `json:"results" binding:"required"`
}

// SimpanQC POST /api/v1/penerimaan/:id/qc
func (h *PenerimaanHandler) SimpanQC(c *gin.Context) {
	var req qcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	pnr, err := h.svc.SimpanQC(c.Request.Context(), c.Param("id"), req.Results, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, pnr)
}
