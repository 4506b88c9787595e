package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetProfile GET /api/v1/settings/profile
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	p, err := h.svc.GetProfile(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, p)
}

// UpdateProfile PUT /api/v1/settings/profile
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req service.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	p, err := h.svc.UpdateProfile(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, p)
}

// UploadLogo POST /api/v1/settings/logo
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "logo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	p, err := h.svc.UploadLogo(c.Request.Context(), file, header.Filename, header.Size, contentType, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, p)
}

// GetLabelConfig GET /api/v1/settings/label/:jenis
func (h *SettingsHandler) GetLabelConfig(c *gin.Context) {
	lc, err := h.svc.GetLabelConfig(c.Request.Context(), c.Param("jenis"))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, lc)
}

// SaveLabelConfig PUT /api/v1/settings/label/:jenis
func (h *SettingsHandler) SaveLabelConfig(c *gin.Context) {
	var req service.LabelConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	lc, err := h.svc.SaveLabelConfig(c.Request.Context(), c.Param("jenis"), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, lc)
}

// ListAudit GET /api/v1/audit
func (h *SettingsHandler) ListAudit(c *gin.Context) {
	limit, offset := GetPagination(c)
	entries, total, err := h.svc.ListAudit(c.Request.Context(), limit, offset)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{
		"items": entries,
		"total": total,
	})
}
