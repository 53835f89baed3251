package routes

import (
	"database/sql"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dermatosalud/reportes-backend/config"
	authControllers "github.com/dermatosalud/reportes-backend/internal/auth/controllers"
	authModels "github.com/dermatosalud/reportes-backend/internal/auth/models"
	authServices "github.com/dermatosalud/reportes-backend/internal/auth/services"
	"github.com/dermatosalud/reportes-backend/internal/common/middlewares"
	reportControllers "github.com/dermatosalud/reportes-backend/internal/reports/controllers"
	reportServices "github.com/dermatosalud/reportes-backend/internal/reports/services"
	"github.com/dermatosalud/reportes-backend/ws"
)

// Init wires services, controllers and routes on the echo instance.
func Init(e *echo.Echo, db *sql.DB, cfg *config.Config) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}

	authService := authServices.NewAuthService(db)
	fetcher := reportServices.NewRecordFetcher(db)
	trendsService := reportServices.NewTrendsService(fetcher, ws.HubInstance, cfg.PeakHourUnitValue)
	professionalService := reportServices.NewProfessionalStatsService(fetcher)

	authController := authControllers.NewAuthController(authService)
	trendsController := reportControllers.NewTrendsController(trendsService, loc)
	professionalController := reportControllers.NewProfessionalStatsController(professionalService, loc)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authController.Login) // no JWT

	reportes := api.Group("/reportes", middlewares.JWTMiddleware())
	reportes.GET("/tendencias-crecimiento", trendsController.GetTendenciasCrecimiento,
		middlewares.RequireRole(authModels.RoleGerente))
	reportes.GET("/professional-stats", professionalController.GetProfessionalStats,
		middlewares.RequireRole(authModels.RoleProfesional))

	e.GET("/ws/dashboard", ws.ServeWS(ws.HubInstance), middlewares.JWTMiddleware())
}
