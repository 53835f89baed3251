package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dermatosalud/reportes-backend/internal/reports/services"
)

type TrendsController struct {
	Service *services.TrendsService
	Loc     *time.Location
}

func NewTrendsController(svc *services.TrendsService, loc *time.Location) *TrendsController {
	return &TrendsController{Service: svc, Loc: loc}
}

// GetTendenciasCrecimiento handles GET /api/reportes/tendencias-crecimiento.
// Role enforcement happens in middleware; by the time this runs the caller
// is a GERENTE.
func (tc *TrendsController) GetTendenciasCrecimiento(c echo.Context) error {
	now := time.Now().In(tc.Loc)

	report, err := tc.Service.GrowthTrends(c.Request().Context(), now)
	if err != nil {
		log.Printf("tendencias-crecimiento failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener datos de tendencias"})
	}

	return c.JSON(http.StatusOK, report)
}
