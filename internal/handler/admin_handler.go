package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-service/internal/admin"
	"storefront-service/internal/catalog"
	mid "storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UnlockRequest is the body of POST /api/admin/session
type UnlockRequest struct {
	Secret string `json:"secret"`
}

// UnlockResponse carries the bearer token for the unlocked console
type UnlockResponse struct {
	Token string `json:"token"`
	State string `json:"state"`
}

// FormOptions are the choices offered by the product form
type FormOptions struct {
	Genders   []model.Gender   `json:"genders"`
	Seasons   []model.Season   `json:"seasons"`
	Fabrics   []model.Fabric   `json:"fabrics"`
	Occasions []model.Occasion `json:"occasions"`
}

// DraftResponse is a product form with its choices
type DraftResponse struct {
	admin.Draft
	Options FormOptions `json:"options"`
}

func draftResponse(d admin.Draft) DraftResponse {
	return DraftResponse{
		Draft: d,
		Options: FormOptions{
			Genders:   model.Genders(),
			Seasons:   model.Seasons(),
			Fabrics:   model.Fabrics(),
			Occasions: model.Occasions(),
		},
	}
}

// OpenAdminSession handles POST /api/admin/session
func (h *Handler) OpenAdminSession(c echo.Context) error {
	log := logger.FromEcho(c)

	var req UnlockRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid unlock request", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	id, err := h.Sessions.Open(req.Secret)
	if err != nil {
		log.Warn("Admin unlock rejected")
		return errorJSON(c, http.StatusUnauthorized, "Access Denied")
	}

	token, err := h.Tokens.GenerateToken(id)
	if err != nil {
		log.Error("Failed to issue admin token", zap.Error(err))
		_ = h.Sessions.Close(id)
		return errorJSON(c, http.StatusInternalServerError, "Failed to issue token")
	}

	log.Info("Admin console unlocked", zap.String("session_id", id))
	return c.JSON(http.StatusOK, UnlockResponse{Token: token, State: admin.Unlocked.String()})
}

// CloseAdminSession handles DELETE /api/admin/session
func (h *Handler) CloseAdminSession(c echo.Context) error {
	id, _ := mid.SessionIDFromContext(c)
	if err := h.Sessions.Close(id); err != nil {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	logger.FromEcho(c).Info("Admin console locked", zap.String("session_id", id))
	return c.JSON(http.StatusOK, echo.Map{"state": admin.Locked.String()})
}

// AdminStats handles GET /api/admin/stats
func (h *Handler) AdminStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Admin.Stats())
}

// AdminInventory handles GET /api/admin/products
func (h *Handler) AdminInventory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Admin.Inventory())
}

// NewProductDraft handles GET /api/admin/products/draft
func (h *Handler) NewProductDraft(c echo.Context) error {
	return c.JSON(http.StatusOK, draftResponse(admin.NewDraft()))
}

// EditProductDraft handles GET /api/admin/products/:id/draft
func (h *Handler) EditProductDraft(c echo.Context) error {
	d, err := h.Admin.EditDraft(c.Param("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(http.StatusOK, draftResponse(d))
}

// CreateProduct handles POST /api/admin/products
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	d := admin.NewDraft()
	if err := c.Bind(&d); err != nil {
		log.Warn("Invalid product draft", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	p, err := h.Admin.CreateProduct(requestContext(c), d)
	if err != nil {
		log.Warn("Product draft rejected", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	log.Info("Product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /api/admin/products/:id
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var d admin.Draft
	if err := c.Bind(&d); err != nil {
		log.Warn("Invalid product draft", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	p, err := h.Admin.UpdateProduct(requestContext(c), id, d)
	if err != nil {
		return productError(c, err)
	}

	log.Info("Product updated", zap.String("product_id", p.ID))
	return c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/admin/products/:id?confirm=true
func (h *Handler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))

	if err := h.Admin.DeleteProduct(requestContext(c), id, confirmed); err != nil {
		return productError(c, err)
	}

	logger.FromEcho(c).Info("Product deleted", zap.String("product_id", id))
	return c.NoContent(http.StatusNoContent)
}

// AdminSettings handles GET /api/admin/settings
func (h *Handler) AdminSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, settingsResponse(h.Admin.Settings()))
}

// UpdateSettings handles PUT /api/admin/settings
func (h *Handler) UpdateSettings(c echo.Context) error {
	log := logger.FromEcho(c)

	var next model.Settings
	if err := c.Bind(&next); err != nil {
		log.Warn("Invalid settings request", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.Admin.UpdateSettings(requestContext(c), next); err != nil {
		log.Warn("Settings rejected", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	log.Info("Settings updated")
	return c.JSON(http.StatusOK, settingsResponse(h.Admin.Settings()))
}

func productError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, admin.ErrConfirmationRequired):
		return errorJSON(c, http.StatusConflict, err.Error())
	default:
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
}
