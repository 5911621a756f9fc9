package handler

import (
	mid "storefront-service/internal/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the storefront API on e
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Readiness)

	api := e.Group("/api")

	// Catalog and shop views
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/shop", h.Shop)
	api.GET("/shop/toggle", h.ToggleFilter)
	api.GET("/search", h.Search)
	api.GET("/settings", h.GetSettings)

	// Carts
	api.POST("/carts", h.CreateCart)
	api.GET("/carts/:cartID", h.GetCart)
	api.POST("/carts/:cartID/items", h.AddCartItem)
	api.PUT("/carts/:cartID/items/:productID", h.SetCartItemQuantity)
	api.DELETE("/carts/:cartID/items/:productID", h.RemoveCartItem)

	// Stylist
	api.POST("/stylist/conversations", h.StartConversation)
	api.GET("/stylist/conversations/:id", h.GetConversation)
	api.POST("/stylist/conversations/:id/messages", h.SendMessage)

	// Admin console: unlocking is public, everything else needs an unlocked session
	api.POST("/admin/session", h.OpenAdminSession)

	adminAPI := api.Group("/admin", mid.AdminAuthMiddleware(h.Tokens, h.Sessions))
	adminAPI.DELETE("/session", h.CloseAdminSession)
	adminAPI.GET("/stats", h.AdminStats)
	adminAPI.GET("/products", h.AdminInventory)
	adminAPI.GET("/products/draft", h.NewProductDraft)
	adminAPI.GET("/products/:id/draft", h.EditProductDraft)
	adminAPI.POST("/products", h.CreateProduct)
	adminAPI.PUT("/products/:id", h.UpdateProduct)
	adminAPI.DELETE("/products/:id", h.DeleteProduct)
	adminAPI.GET("/settings", h.AdminSettings)
	adminAPI.PUT("/settings", h.UpdateSettings)
}
