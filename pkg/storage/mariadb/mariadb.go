package mariadb

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/dermatosalud/reportes-backend/config"
	_ "github.com/go-sql-driver/mysql"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect opens the connection to the MariaDB database.
// Credentials come from .env through config.LoadConfig; parseTime and the
// clinic timezone are pinned in the DSN so DATETIME columns scan into
// time.Time in local clinic time.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			url.QueryEscape(cfg.Timezone))

		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("Failed to open database connection: %v", err)
		}

		if err = db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		log.Println("Connected to MariaDB.")
	})

	return db
}

// GetDB returns the already established database connection.
func GetDB() *sql.DB {
	return db
}
