package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProduk GET /api/v1/produk
func (h *CatalogHandler) ListProduk(c *gin.Context) {
	produk, err := h.svc.ListProduk(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, produk)
}

// CreateProduk POST /api/v1/produk
func (h *CatalogHandler) CreateProduk(c *gin.Context) {
	var req service.ProdukRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	p, err := h.svc.BuatProduk(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, p)
}

// UpdateProduk PUT /api/v1/produk/:id
func (h *CatalogHandler) UpdateProduk(c *gin.Context) {
	var req service.ProdukRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	p, err := h.svc.UbahProduk(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, p)
}

// DeleteProduk DELETE /api/v1/produk/:id
func (h *CatalogHandler) DeleteProduk(c *gin.Context) {
	if err := h.svc.HapusProduk(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}

// ListKategori GET /api/v1/kategori
func (h *CatalogHandler) ListKategori(c *gin.Context) {
	kategori, err := h.svc.ListKategori(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, kategori)
}

type namaRequest struct {
	Nama string `json:"nama" binding:"required"`
}

// CreateKategori POST /api/v1/kategori
func (h *CatalogHandler) CreateKategori(c *gin.Context) {
	var req namaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	k, err := h.svc.BuatKategori(c.Request.Context(), req.Nama, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, k)
}

// DeleteKategori DELETE /api/v1/kategori/:id
func (h *CatalogHandler) DeleteKategori(c *gin.Context) {
	if err := h.svc.HapusKategori(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}

// ListWarna GET /api/v1/warna
func (h *CatalogHandler) ListWarna(c *gin.Context) {
	warna, err := h.svc.ListWarna(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, warna)
}

type warnaRequest struct {
	Kode string `json:"kode" binding:"required"`
	Nama string `json:"nama" binding:"required"`
}

// CreateWarna POST /api/v1/warna
func (h *CatalogHandler) CreateWarna(c *gin.Context) {
	var req warnaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	w, err := h.svc.BuatWarna(c.Request.Context(), req.Kode, req.Nama, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, w)
}

// DeleteWarna DELETE /api/v1/warna/:kode
func (h *CatalogHandler) DeleteWarna(c *gin.Context) {
	if err := h.svc.HapusWarna(c.Request.Context(), c.Param("kode"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}

// ListSuppliers GET /api/v1/suppliers
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.svc.ListSuppliers(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, suppliers)
}

// CreateSupplier POST /api/v1/suppliers
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	sup, err := h.svc.BuatSupplier(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, sup)
}

// UpdateSupplier PUT /api/v1/suppliers/:id
func (h *CatalogHandler) UpdateSupplier(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	sup, err := h.svc.UbahSupplier(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, sup)
}

// DeleteSupplier DELETE /api/v1/suppliers/:id
func (h *CatalogHandler) DeleteSupplier(c *gin.Context) {
	if err := h.svc.HapusSupplier(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}

// ListVendors GET /api/v1/vendors
func (h *CatalogHandler) ListVendors(c *gin.Context) {
	vendors, err := h.svc.ListVendors(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, vendors)
}

// CreateVendor POST /api/v1/vendors
func (h *CatalogHandler) CreateVendor(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	v, err := h.svc.BuatVendor(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, v)
}

// UpdateVendor PUT /api/v1/vendors/:id
func (h *CatalogHandler) UpdateVendor(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	v, err := h.svc.UbahVendor(c.Request.Context(), c.Param("id"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, v)
}

// DeleteVendor DELETE /api/v1/vendors/:id
func (h *CatalogHandler) DeleteVendor(c *gin.Context) {
	if err := h.svc.HapusVendor(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}
