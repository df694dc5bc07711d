package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// DashboardHandler serves the aggregate view behind the panel's landing page.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary returns booking/machine counts and the data behind the bar chart.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
