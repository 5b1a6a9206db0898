package billing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "physician", "nurse", "lab_tech", "front_desk"))
	read.GET("/payments", h.ListForPatient)
	read.GET("/patients/:id/amount-due", h.AmountDue)

	write := api.Group("", auth.RequireRole("admin", "front_desk"))
	write.POST("/payments", h.RecordPayment)
}

func (h *Handler) RecordPayment(c echo.Context) error {
	var in RecordPaymentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.RecordPayment(c.Request().Context(), in)
	if err == ErrOrderNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListForPatient(c echo.Context) error {
	patientID := c.QueryParam("patient_id")
	if patientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	payments, err := h.svc.ListForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list payments")
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *Handler) AmountDue(c echo.Context) error {
	due, err := h.svc.AmountDue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute amount due")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"patientId": c.Param("id"),
		"amountDue": due,
	})
}
