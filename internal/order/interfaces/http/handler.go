package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"

	catalogdomain "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	inventorydomain "github.com/wyfcoding/groceryplatform/internal/inventory/domain"
	"github.com/wyfcoding/groceryplatform/internal/order/application"
	"github.com/wyfcoding/groceryplatform/internal/order/domain"
)

// OrderHandler exposes the cart and checkout operations over HTTP.
type OrderHandler struct {
	svc *application.OrderApplicationService
}

func NewOrderHandler(svc *application.OrderApplicationService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1")
	{
		api.POST("/cart/items", h.AddItem)
		api.DELETE("/cart/items", h.RemoveItem)
		api.GET("/cart/:customer", h.ViewCart)
		api.POST("/checkout", h.Checkout)
	}
}

type CartItemRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Product    string `json:"product" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

type OrderItemResponse struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type OrderResponse struct {
	Status string              `json:"status"`
	Total  string              `json:"total"`
	Items  []OrderItemResponse `json:"items"`
}

func toOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			Product:   item.Product.Name,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().String(),
		})
	}
	return OrderResponse{Status: string(o.Status), Total: o.Total().String(), Items: items}
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	order, err := h.svc.AddItem(c.Request.Context(), req.CustomerID, req.Product, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, toOrderResponse(order))
}

func (h *OrderHandler) RemoveItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	if err := h.svc.RemoveItem(c.Request.Context(), req.CustomerID, req.Product, req.Quantity); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"status": "removed", "product": req.Product, "quantity": req.Quantity})
}

func (h *OrderHandler) ViewCart(c *gin.Context) {
	customerID := c.Param("customer")
	orders, err := h.svc.ListOrders(c.Request.Context(), customerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	response.Success(c, gin.H{"customer_id": customerID, "orders": out})
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	amount, err := h.svc.Checkout(c.Request.Context(), req.CustomerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"customer_id": req.CustomerID, "amount": amount.String()})
}

// writeError maps the recoverable domain errors onto HTTP statuses; anything
// else is a 500.
func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound), errors.Is(err, domain.ErrItemNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, inventorydomain.ErrInsufficientStock):
		response.ErrorWithStatus(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, inventorydomain.ErrInvalidQuantity):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, domain.ErrEmptyCart):
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err.Error(), "")
	default:
		logging.Error(c.Request.Context(), "order operation failed", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
	}
}
