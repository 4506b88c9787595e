package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type ReturHandler struct {
	svc *service.ReturService
}

func NewReturHandler(svc *service.ReturService) *ReturHandler {
	return &ReturHandler{svc: svc}
}

// ListCustomer GET /api/v1/retur/customer
func (h *ReturHandler) ListCustomer(c *gin.Context) {
	rcs, err := h.svc.ListCustomer(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, rcs)
}

// CreateCustomer POST /api/v1/retur/customer
func (h *ReturHandler) CreateCustomer(c *gin.Context) {
	var req service.AjukanReturCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	rc, err := h.svc.AjukanReturCustomer(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, rc)
}

// Musnahkan POST /api/v1/retur/customer/:id/musnahkan
func (h *ReturHandler) Musnahkan(c *gin.Context) {
	rc, err := h.svc.Musnahkan(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rc)
}

// Tukar POST /api/v1/retur/customer/:id/tukar
func (h *ReturHandler) Tukar(c *gin.Context) {
	var req service.TukarReturRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	rc, err := h.svc.Tukar(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rc)
}

// KeVendor POST /api/v1/retur/customer/:id/ke-vendor
func (h *ReturHandler) KeVendor(c *gin.Context) {
	rc, err := h.svc.KirimKeVendor(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rc)
}

// ListVendor GET /api/v1/retur/vendor
func (h *ReturHandler) ListVendor(c *gin.Context) {
	rvs, err := h.svc.ListVendor(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, rvs)
}

// KirimVendor POST /api/v1/retur/vendor/:id/kirim
func (h *ReturHandler) KirimVendor(c *gin.Context) {
	rv, err := h.svc.KirimReturVendor(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rv)
}

// MasukGudang POST /api/v1/retur/vendor/:id/masuk-gudang
func (h *ReturHandler) MasukGudang(c *gin.Context) {
	rv, err := h.svc.MasukGudang(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rv)
}

// Refund POST /api/v1/retur/vendor/:id/refund
func (h *ReturHandler) Refund(c *gin.Context) {
	rv, err := h.svc.RefundVendor(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rv)
}

// ListSupplier GET /api/v1/retur/supplier
func (h *ReturHandler) ListSupplier(c *gin.Context) {
	rss, err := h.svc.ListSupplier(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, rss)
}

// KirimSupplier POST /api/v1/retur/supplier/:id/kirim
func (h *ReturHandler) KirimSupplier(c *gin.Context) {
	rs, err := h.svc.KirimKeSupplier(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rs)
}

// Pengganti POST /api/v1/retur/supplier/:id/pengganti
func (h *ReturHandler) Pengganti(c *gin.Context) {
	rs, err := h.svc.TerimaPengganti(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rs)
}

// Kerugian POST /api/v1/retur/supplier/:id/kerugian
func (h *ReturHandler) Kerugian(c *gin.Context) {
	rs, err := h.svc.CatatKerugian(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, rs)
}
