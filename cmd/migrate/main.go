// Comando de migraciones: aplica los .sql de migrations/ con goose sobre
// PostgreSQL (driver pgx vía database/sql).
package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/labmetricas/labstock-api/pkg/config"
	"github.com/labmetricas/labstock-api/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "comando goose: up|down|status|version")
	dir := flag.String("dir", "migrations", "directorio de migraciones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping DB")
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}

	if err := goose.Run(*cmd, db, *dir); err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("ejecutar migración")
	}

	log.Info().Str("cmd", *cmd).Msg("migración completada")
}
