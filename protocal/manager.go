package protocal

import (
	httpAdapter "currency-assistant/internal/adapters/input/http"
	"currency-assistant/internal/adapters/output/postgres"
	"currency-assistant/internal/application"
	"currency-assistant/pkg/database_driver/gorm"
)

// ServeManager func - currency-manager service, the only writer of the rate table
func ServeManager() error {
	cfg := initConfig()
	app := newApp("currency-manager")

	dbConGorm, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	// Output adapter (repository)
	repo, err := postgres.NewCurrencyRepository(dbConGorm.Postgres)
	if err != nil {
		gorm.DisconnectPostgres(dbConGorm.Postgres)
		return err
	}
	// Application service (use case)
	srv := application.NewCurrencyManagementService(repo)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.NewCurrencyManagerHandler(srv)

	mountSwagger(app)
	app.Get("/health", hdl.HealthCheck)
	app.Post("/load", hdl.Load)
	app.Post("/update_currency", hdl.UpdateCurrency)
	app.Post("/delete", hdl.DeleteCurrency)

	return listen(app, cfg.Manager.Port, func() {
		gorm.DisconnectPostgres(dbConGorm.Postgres)
	})
}
