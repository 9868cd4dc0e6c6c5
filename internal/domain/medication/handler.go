package medication

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medtrack/medtrack/pkg/supply"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:patientId/medications", h.ListByPatient)
	api.GET("/medications/:id", h.GetMedication)
	api.POST("/medications", h.CreateMedication)
	api.PUT("/medications/:id", h.RefillMedication)
	api.DELETE("/medications/:id", h.DeleteMedication)
}

// response decorates a medication with its computed supply projection. The
// projection is derived on every read and never persisted. days_left is
// omitted when the supply never depletes.
type response struct {
	*Medication
	DaysLeft    *float64 `json:"days_left,omitempty"`
	Status      string   `json:"status"`
	ReorderDate string   `json:"reorder_date,omitempty"`
}

func newResponse(m *Medication) response {
	r := m.Supply()
	resp := response{Medication: m, Status: r.DisplayStatus()}
	if !math.IsInf(r.DaysLeft, 1) {
		days := r.DaysLeft
		resp.DaysLeft = &days
	}
	if date, ok := supply.ReorderDate(r.DaysLeft, time.Now()); ok {
		resp.ReorderDate = date.Format("02.01.2006")
	}
	return resp
}

// refillRequest carries the only field the update path may change.
type refillRequest struct {
	Current int `json:"current"`
}

func (h *Handler) CreateMedication(c echo.Context) error {
	var m Medication
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateMedication(c.Request().Context(), &m); err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, newResponse(&m))
}

func (h *Handler) GetMedication(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medication id")
	}
	m, err := h.svc.GetMedication(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "medication not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, newResponse(m))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := parseID(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	meds, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resps := make([]response, 0, len(meds))
	for _, m := range meds {
		resps = append(resps, newResponse(m))
	}
	return c.JSON(http.StatusOK, resps)
}

func (h *Handler) RefillMedication(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medication id")
	}
	var req refillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Refill(c.Request().Context(), id, req.Current)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "medication not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, newResponse(m))
}

func (h *Handler) DeleteMedication(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medication id")
	}
	if err := h.svc.DeleteMedication(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "medication not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
