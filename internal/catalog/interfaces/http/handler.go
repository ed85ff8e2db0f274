package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/groceryplatform/internal/catalog/application"
	"github.com/wyfcoding/groceryplatform/internal/catalog/domain"
)

// CatalogHandler exposes catalog queries and registration over HTTP.
type CatalogHandler struct {
	svc *application.CatalogApplicationService
}

func NewCatalogHandler(svc *application.CatalogApplicationService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/products")
	{
		api.POST("", h.AddProduct)
		api.GET("", h.ListProducts)
		api.GET("/:name", h.GetProduct)
	}
}

type AddProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" binding:"min=0"`
}

type ProductResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{Name: p.Name, Category: p.Category, Price: p.Price.String(), Stock: p.Stock}
}

func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	p, err := h.svc.AddProduct(c.Request.Context(), req.Name, req.Category, req.Price, req.Stock)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateProduct) {
			response.ErrorWithStatus(c, http.StatusConflict, err.Error(), "")
			return
		}
		if errors.Is(err, domain.ErrInvalidProduct) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		logging.Error(c.Request.Context(), "failed to add product", "name", req.Name, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, toProductResponse(p))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	seq := h.svc.ListAll(ctx)
	if category := c.Query("category"); category != "" {
		seq = h.svc.ListByCategory(ctx, category)
	}

	products := make([]ProductResponse, 0)
	for p := range seq {
		products = append(products, toProductResponse(p))
	}
	response.Success(c, gin.H{"products": products})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	name := c.Param("name")
	p, err := h.svc.FindByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
			return
		}
		logging.Error(c.Request.Context(), "failed to get product", "name", name, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, toProductResponse(p))
}
