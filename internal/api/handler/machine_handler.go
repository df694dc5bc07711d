package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// MachineHandler handles HTTP requests for machine operations.
type MachineHandler struct {
	service ports.MachineService
}

func NewMachineHandler(service ports.MachineService) *MachineHandler {
	return &MachineHandler{service: service}
}

// List returns every machine with its status and usage counter.
//
// @Summary      List machines
// @Tags         machines
// @Produce      json
// @Success      200  {array}   domain.Machine
// @Failure      401  {object}  map[string]string
// @Router       /machines [get]
func (h *MachineHandler) List(c echo.Context) error {
	machines, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, machines)
}

// Break marks a machine out of order and drops its regular bookings.
//
// @Summary      Mark a machine out of order
// @Tags         machines
// @Produce      plain
// @Param        name  path      string  true  "Machine name"
// @Success      200   {string}  string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /machines/{name}/break [post]
func (h *MachineHandler) Break(c echo.Context) error {
	if err := h.service.Break(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "machine marked out of order")
}

// Repair frees a machine and drops its maintenance bookings.
//
// @Summary      Repair a machine
// @Tags         machines
// @Produce      plain
// @Param        name  path      string  true  "Machine name"
// @Success      200   {string}  string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /machines/{name}/repair [post]
func (h *MachineHandler) Repair(c echo.Context) error {
	if err := h.service.Repair(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "machine repaired")
}
