package handler

import (
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/internal/settings"

	"github.com/labstack/echo/v4"
)

// SettingsResponse is the public settings with the contact links built
// from them
type SettingsResponse struct {
	model.Settings
	Links settings.Links `json:"links"`
}

func settingsResponse(s model.Settings) SettingsResponse {
	return SettingsResponse{Settings: s, Links: settings.LinksFor(s)}
}

// GetSettings handles GET /api/settings
func (h *Handler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, settingsResponse(h.Settings.Get()))
}
