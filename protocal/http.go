package protocal

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"currency-assistant/configs"
	"currency-assistant/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// initConfig reads the -env flag, loads configs/config.yaml and sets up logging
func initConfig() *configs.Config {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	setupLogger(configs.GetViper().App)
	logrus.Info(configs.GetViper().Env)
	return configs.GetViper()
}

func setupLogger(app configs.App) {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if app.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func newApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{AppName: name})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	return app
}

func mountSwagger(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault) // default
}

func connectDatabase(cfg *configs.Config) (*gorm.DB, error) {
	return gorm.ConnectToPostgreSQL(
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.DbName,
		cfg.Postgres.SSLMode,
		gorm.PoolConfig{
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Minute,
		},
	)
}

// listen serves the app until an interrupt arrives, then runs cleanup
func listen(app *fiber.App, port string, cleanup func()) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range c {
			logrus.Println("Gracefull shut down ...")
			if err := app.Shutdown(); err != nil {
				logrus.Errorln("Error when shutdown server: ", err)
			}
			if cleanup != nil {
				cleanup()
			}
			return
		}
	}()

	logrus.Println("Listerning on port: ", port)
	return app.Listen(":" + port)
}
