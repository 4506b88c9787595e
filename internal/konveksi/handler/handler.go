package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

// Handlers kumpulan HTTP handler.
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Catalog    *CatalogHandler
	Roll       *RollHandler
	SP         *SPHandler
	Penerimaan *PenerimaanHandler
	Order      *OrderHandler
	Retur      *ReturHandler
	Report     *ReportHandler
	Settings   *SettingsHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Catalog:    NewCatalogHandler(svc.Catalog),
		Roll:       NewRollHandler(svc.Roll),
		SP:         NewSPHandler(svc.SP),
		Penerimaan: NewPenerimaanHandler(svc.Penerimaan),
		Order:      NewOrderHandler(svc.Order),
		Retur:      NewReturHandler(svc.Retur),
		Report:     NewReportHandler(svc.Report),
		Settings:   NewSettingsHandler(svc.Settings),
	}
}

// Response struktur respons umum.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success respons sukses.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created respons sukses pembuatan.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error respons gagal dengan kode 5 digit; 3 digit pertama jadi status HTTP.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// DomainError memetakan jenis error domain ke status HTTP:
// validation/qc_imbalance 400, not_found 404, sisanya konflik state 409.
func DomainError(c *gin.Context, err error) {
	switch service.KindOf(err) {
	case service.KindValidation, service.KindQCImbalance:
		BadRequest(c, err.Error())
	case service.KindNotFound:
		NotFound(c, err.Error())
	case service.KindInvalidState, service.KindInsufficientStock,
		service.KindInsufficientRolls, service.KindDuplicateKey:
		Conflict(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// GetUserID ID user dari context hasil JWTAuth.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetUsername username aktor dari context hasil JWTAuth.
func GetUsername(c *gin.Context) string {
	username, _ := c.Get("username")
	if name, ok := username.(string); ok {
		return name
	}
	return ""
}

// GetPagination parameter paginasi dari query string.
func GetPagination(c *gin.Context) (limit, offset int) {
	limit = 50
	offset = 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
