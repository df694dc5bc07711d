package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// ResidentHandler handles HTTP requests for resident operations.
type ResidentHandler struct {
	service ports.ResidentService
}

func NewResidentHandler(service ports.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

type addResidentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Room  string `json:"room"  validate:"required"`
}

// List returns every resident.
//
// @Summary      List residents
// @Tags         residents
// @Produce      json
// @Success      200  {array}   domain.Resident
// @Failure      401  {object}  map[string]string
// @Router       /residents [get]
func (h *ResidentHandler) List(c echo.Context) error {
	residents, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, residents)
}

// Add creates a resident record.
//
// @Summary      Add a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Param        body  body      addResidentRequest  true  "Resident details"
// @Success      201   {object}  domain.Resident
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /residents [post]
func (h *ResidentHandler) Add(c echo.Context) error {
	var req addResidentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resident, err := h.service.Add(c.Request().Context(), ports.AddResidentInput{
		Name:  req.Name,
		Email: req.Email,
		Room:  req.Room,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resident)
}

// Block flags a resident and removes their pending regular bookings.
//
// @Summary      Block a resident
// @Tags         residents
// @Produce      plain
// @Param        id   path      string  true  "Resident id"
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /residents/{id}/block [post]
func (h *ResidentHandler) Block(c echo.Context) error {
	if err := h.service.Block(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "resident blocked")
}

// Unblock clears a resident's blocked flag.
//
// @Summary      Unblock a resident
// @Tags         residents
// @Produce      plain
// @Param        id   path      string  true  "Resident id"
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /residents/{id}/unblock [post]
func (h *ResidentHandler) Unblock(c echo.Context) error {
	if err := h.service.Unblock(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "resident unblocked")
}
