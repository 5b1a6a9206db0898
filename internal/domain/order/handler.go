package order

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/auth"
	"github.com/haneenzahr1-lgtm/labdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "physician", "nurse", "lab_tech", "front_desk"))
	read.GET("/orders", h.List)
	read.GET("/orders/:id", h.Get)
	read.GET("/orders/:id/results", h.ListResults)
	read.GET("/results", h.ListResultsForPatient)

	write := api.Group("", auth.RequireRole("admin", "lab_tech", "front_desk"))
	write.POST("/orders", h.Create)
	write.PUT("/orders/:id/status", h.UpdateStatus)
	write.POST("/orders/:id/results", h.RecordResult)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	o, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		orders []Order
		err    error
	)
	if patientID := c.QueryParam("patient_id"); patientID != "" {
		orders, err = h.svc.ListForPatient(ctx, patientID)
	} else {
		orders, err = h.svc.List(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list orders")
	}

	pg := pagination.FromContext(c)
	start, end := pg.Slice(len(orders))
	return c.JSON(http.StatusOK, pagination.NewResponse(orders[start:end], len(orders), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	o, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load order")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	o, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), Status(body.Status))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) RecordResult(c echo.Context) error {
	var body struct {
		TestCode string `json:"testCode"`
		Status   string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := h.svc.RecordResult(c.Request().Context(), c.Param("id"), body.TestCode, body.Status)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListResults(c echo.Context) error {
	results, err := h.svc.ListResultsForOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list results")
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) ListResultsForPatient(c echo.Context) error {
	patientID := c.QueryParam("patient_id")
	if patientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	results, err := h.svc.ListResultsForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list results")
	}
	return c.JSON(http.StatusOK, results)
}
