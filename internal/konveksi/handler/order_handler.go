package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List GET /api/v1/orders?status=
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context(), entity.OrderStatus(c.Query("status")))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, orders)
}

// Get GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, order)
}

// Create POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.BuatOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.svc.BuatOrder(c.Request.Context(), req, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Created(c, order)
}

type editOrderRequest struct {
	Items []service.OrderItemRequest `json:"items" binding:"required"`
}

// Update PUT /api/v1/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req editOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.svc.EditOrder(c.Request.Context(), c.Param("id"), req.Items, GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, order)
}

// Selesaikan POST /api/v1/orders/:id/selesai
func (h *OrderHandler) Selesaikan(c *gin.Context) {
	order, err := h.svc.SelesaikanOrder(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, order)
}

// Batalkan POST /api/v1/orders/:id/batal
func (h *OrderHandler) Batalkan(c *gin.Context) {
	order, err := h.svc.BatalkanOrder(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	Success(c, order)
}

// Delete DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.HapusOrder(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		DomainError(c, err)
		return
	}
	Success(c, nil)
}
