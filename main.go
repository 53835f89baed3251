package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/dermatosalud/reportes-backend/config"
	"github.com/dermatosalud/reportes-backend/internal/routes"
	"github.com/dermatosalud/reportes-backend/pkg/storage/mariadb"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	e := echo.New()
	routes.Init(e, db, cfg)

	log.Printf("Servidor escuchando en el puerto %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
