package protocal

import (
	httpAdapter "currency-assistant/internal/adapters/input/http"
	"currency-assistant/internal/adapters/output/postgres"
	"currency-assistant/internal/application"
	"currency-assistant/pkg/database_driver/gorm"
)

// ServeData func - data-manager service, read-only access to the rate table
func ServeData() error {
	cfg := initConfig()
	app := newApp("data-manager")

	dbConGorm, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	repo, err := postgres.NewCurrencyRepository(dbConGorm.Postgres)
	if err != nil {
		gorm.DisconnectPostgres(dbConGorm.Postgres)
		return err
	}
	srv := application.NewCurrencyQueryService(repo)
	hdl := httpAdapter.NewCurrencyDataHandler(srv)

	mountSwagger(app)
	app.Get("/health", hdl.HealthCheck)
	app.Get("/currencies", hdl.GetCurrencies)
	app.Get("/convert", hdl.Convert)

	return listen(app, cfg.Data.Port, func() {
		gorm.DisconnectPostgres(dbConGorm.Postgres)
	})
}
