package handler

import (
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/internal/shop"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ShopResponse is the filtered shop view
type ShopResponse struct {
	Products  []model.Product `json:"products"`
	Selection shop.Selection  `json:"selection"`
	Active    []string        `json:"active"`
	Genders   []model.Gender  `json:"genders"`
	Fabrics   []model.Fabric  `json:"fabrics"`
	Colors    []string        `json:"colors"`
	Occasions []string        `json:"occasions"`
}

// ToggleResponse is the selection after a filter toggle
type ToggleResponse struct {
	Selection shop.Selection `json:"selection"`
	Location  string         `json:"location"`
}

// SearchResponse is the search overlay result
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []model.Product `json:"results"`
}

// Shop handles GET /api/shop
func (h *Handler) Shop(c echo.Context) error {
	sel := shop.ParseSelection(c.QueryParams())
	products := h.Catalog.List()
	filtered := shop.Resolve(products, sel)

	logger.FromEcho(c).Debug("Shop filtered",
		zap.Strings("active", sel.Active()),
		zap.Int("count", len(filtered)))

	return c.JSON(http.StatusOK, ShopResponse{
		Products:  filtered,
		Selection: sel,
		Active:    sel.Active(),
		Genders:   model.Genders(),
		Fabrics:   model.Fabrics(),
		Colors:    shop.Colors(products),
		Occasions: shop.Occasions(),
	})
}

// ToggleFilter handles GET /api/shop/toggle?key=&value= plus the current
// selection's query parameters
func (h *Handler) ToggleFilter(c echo.Context) error {
	sel := shop.ParseSelection(c.QueryParams())
	next, err := shop.Toggle(sel, c.QueryParam("key"), c.QueryParam("value"))
	if err != nil {
		logger.FromEcho(c).Warn("Invalid filter toggle", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, ToggleResponse{Selection: next, Location: next.Location()})
}

// Search handles GET /api/search?q=
func (h *Handler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	return c.JSON(http.StatusOK, SearchResponse{Query: q, Results: shop.Search(h.Catalog.List(), q)})
}
