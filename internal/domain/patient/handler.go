package patient

import (
	"errors"
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
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse", "lab_tech", "front_desk"))
	readGroup.GET("/patients", h.List)
	readGroup.GET("/patients/directory", h.Directory)
	readGroup.GET("/patients/:id", h.Get)

	writeGroup := api.Group("", auth.RequireRole("admin", "front_desk"))
	writeGroup.POST("/patients", h.Register)
	writeGroup.PUT("/patients/:id/notes", h.UpdateNotes)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) List(c echo.Context) error {
	patients, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	pg := pagination.FromContext(c)
	start, end := pg.Slice(len(patients))
	return c.JSON(http.StatusOK, pagination.NewResponse(patients[start:end], len(patients), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Find(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

// DirectoryResponse distinguishes a filtered-out listing from an empty
// store: NoMatches is set only when a non-empty search term matched no one.
type DirectoryResponse struct {
	Data      []Row `json:"data"`
	Total     int   `json:"total"`
	NoMatches bool  `json:"no_matches"`
}

func (h *Handler) Directory(c echo.Context) error {
	term := c.QueryParam("search")
	rows, noMatches, err := h.svc.Search(c.Request().Context(), term)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, &DirectoryResponse{
		Data:      rows,
		Total:     len(rows),
		NoMatches: noMatches,
	})
}

func (h *Handler) UpdateNotes(c echo.Context) error {
	var in struct {
		Notes string `json:"notes"`
	}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.UpdateNotes(c.Request().Context(), c.Param("id"), in.Notes)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
