package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dermatosalud/reportes-backend/internal/common/middlewares"
	"github.com/dermatosalud/reportes-backend/internal/reports/services"
)

const defaultStatsDays = 30

type ProfessionalStatsController struct {
	Service *services.ProfessionalStatsService
	Loc     *time.Location
}

func NewProfessionalStatsController(svc *services.ProfessionalStatsService, loc *time.Location) *ProfessionalStatsController {
	return &ProfessionalStatsController{Service: svc, Loc: loc}
}

// GetProfessionalStats handles GET /api/reportes/professional-stats.
// Query params: dateFrom/dateTo as YYYY-MM-DD (inclusive dates, resolved to a
// half-open window), or allTime=1. Defaults to the last 30 days. The
// professional is the authenticated caller, never a query parameter.
func (pc *ProfessionalStatsController) GetProfessionalStats(c echo.Context) error {
	claims := middlewares.ClaimsFromContext(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autorizado"})
	}

	now := time.Now().In(pc.Loc)
	allTime := c.QueryParam("allTime") == "1"

	var window services.TimeWindow
	switch {
	case allTime:
		// Open-ended start; the service narrows the reported range to the
		// oldest appointment found.
		window = services.TimeWindow{
			Start: time.Date(1970, time.January, 1, 0, 0, 0, 0, pc.Loc),
			End:   services.LastNDaysWindow(now, 1).End,
		}
	case c.QueryParam("dateFrom") != "" || c.QueryParam("dateTo") != "":
		from, err := time.ParseInLocation("2006-01-02", c.QueryParam("dateFrom"), pc.Loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "dateFrom inválido"})
		}
		to, err := time.ParseInLocation("2006-01-02", c.QueryParam("dateTo"), pc.Loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "dateTo inválido"})
		}
		// dateTo is an inclusive calendar date; the window ends at the next midnight.
		window = services.TimeWindow{Start: from, End: to.AddDate(0, 0, 1)}
		if window.End.Before(window.Start) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rango de fechas inválido"})
		}
	default:
		window = services.LastNDaysWindow(now, defaultStatsDays)
	}

	report, err := pc.Service.Stats(c.Request().Context(), claims.UserID, window, allTime)
	if err != nil {
		log.Printf("professional-stats failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al obtener estadísticas"})
	}

	return c.JSON(http.StatusOK, report)
}
