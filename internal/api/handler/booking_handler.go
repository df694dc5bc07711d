package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type submitBookingRequest struct {
	Machine       string `json:"machine" validate:"required"`
	Time          string `json:"time"    validate:"required"`
	User          string `json:"user"    validate:"required"`
	IsMaintenance bool   `json:"isMaintenance"`
}

// List returns every live booking.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Submit runs the admission checks and creates a booking.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      submitBookingRequest  true  "Booking request"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Submit(c echo.Context) error {
	var req submitBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Submit(c.Request().Context(), ports.SubmitBookingInput{
		Machine:       req.Machine,
		Time:          req.Time,
		User:          req.User,
		IsMaintenance: req.IsMaintenance,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// Cancel deletes a booking and frees its machine.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      plain
// @Param        id   path      string  true  "Booking id"
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	if err := h.service.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "booking cancelled")
}
