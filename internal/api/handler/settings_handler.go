package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// SettingsHandler handles HTTP requests for the settings form.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// saveSettingsRequest uses pointer fields so a missing field is
// distinguishable from an explicit zero; values are otherwise unbounded.
type saveSettingsRequest struct {
	BookingDuration *int `json:"bookingDuration" validate:"required"`
	MaxBookings     *int `json:"maxBookings"     validate:"required"`
	MaxDaysAhead    *int `json:"maxDaysAhead"    validate:"required"`
}

// Get returns the current settings, or the defaults when none are persisted.
//
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Failure      401  {object}  map[string]string
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	cfg, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Save upserts the settings record.
//
// @Summary      Save settings
// @Tags         settings
// @Accept       json
// @Produce      plain
// @Param        body  body      saveSettingsRequest  true  "Settings values"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /settings [post]
func (h *SettingsHandler) Save(c echo.Context) error {
	var req saveSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Save(c.Request().Context(), domain.Settings{
		BookingDuration: *req.BookingDuration,
		MaxBookings:     *req.MaxBookings,
		MaxDaysAhead:    *req.MaxDaysAhead,
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "settings saved")
}
