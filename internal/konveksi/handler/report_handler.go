package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Dashboard GET /api/v1/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	sum, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, sum)
}

// Export GET /api/v1/laporan/export
func (h *ReportHandler) Export(c *gin.Context) {
	f, filename, err := h.svc.ExportLaporan(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
