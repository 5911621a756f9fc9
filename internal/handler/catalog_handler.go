package handler

import (
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/internal/settings"
	"storefront-service/internal/shop"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductDetailResponse is the product page
type ProductDetailResponse struct {
	Product     model.Product `json:"product"`
	Gallery     []string      `json:"gallery"`
	InquiryLink string        `json:"inquiryLink"`
	// Fallback is set when the requested id was not found and the first
	// catalog entry is shown instead
	Fallback bool `json:"fallback"`
}

// ListProducts handles GET /api/products
func (h *Handler) ListProducts(c echo.Context) error {
	products := h.Catalog.List()
	logger.FromEcho(c).Debug("Products listed", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (h *Handler) GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	p, ok := shop.Detail(h.Catalog.List(), id)
	if !ok {
		log.Warn("Product requested from an empty catalog", zap.String("product_id", id))
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}
	if p.ID != id {
		log.Info("Unknown product id, showing first catalog entry",
			zap.String("product_id", id),
			zap.String("shown_id", p.ID))
	}
	prometheus.RecordProductView(p.ID)

	return c.JSON(http.StatusOK, ProductDetailResponse{
		Product:     p,
		Gallery:     p.Gallery(),
		InquiryLink: settings.InquiryLink(h.Settings.Get().WhatsAppNumber, p.Name),
		Fallback:    p.ID != id,
	})
}
