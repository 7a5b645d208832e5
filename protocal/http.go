package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"gamelink-finder/configs"
	httpAdapter "gamelink-finder/internal/adapters/input/http"
	"gamelink-finder/internal/adapters/output/database"
	"gamelink-finder/internal/adapters/output/googlesearch"
	lineAdapter "gamelink-finder/internal/adapters/output/line"
	"gamelink-finder/internal/adapters/output/memory"
	"gamelink-finder/internal/application"
	"gamelink-finder/pkg/database_driver/gorm"
	"gamelink-finder/pkg/validator"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	setLogLevel(conf)
	logrus.Info(conf.Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization," + httpAdapter.AdminKeyHeader,
	}))
	app.Use(httpAdapter.Metrics())

	dbConGorm, err := OpenCatalog(conf)
	if err != nil {
		return err
	}
	resultCache, closeCache, err := NewResultCache(conf)
	if err != nil {
		gorm.Disconnect(dbConGorm.Catalog)
		return err
	}

	// Wire up the hexagonal architecture layers
	// Output adapters
	catalogRepo := database.NewCatalogRepository(dbConGorm.Catalog)
	searchClient, err := googlesearch.NewSearchClientAdapter(conf.Search)
	if err != nil {
		logrus.Fatalf("Failed to create search client: %v", err)
	}
	lineClient, err := lineAdapter.NewLineClientAdapter(conf.Line.ChannelToken)
	if err != nil {
		logrus.Fatalf("Failed to create LINE client: %v", err)
	}
	sessionStore := memory.NewMemorySessionStore(time.Duration(conf.Session.Timeout) * time.Minute)

	// Application services (use cases)
	catalogSrv := application.NewCatalogService(catalogRepo, validator.New())
	executor := application.NewSearchExecutor(searchClient, application.SearchPolicyFromConfig(conf.Search))
	orchestrator := application.NewSearchOrchestrator(catalogRepo, executor, resultCache, executor.Policy().MaxAttempts)
	lineWebhookSrv := application.NewLineWebhookService(
		lineClient,
		sessionStore,
		orchestrator,
		application.NewCatalogMenu(catalogSrv),
		application.NewAddGameFlow(catalogSrv, conf.Line.AdminUserID),
		application.NewDispatcher(),
	)

	// Input adapters
	hdl := httpAdapter.New(catalogSrv, dbConGorm.Catalog, conf.App.AdminKey)
	lineWebhookHdl := httpAdapter.NewLineWebhookHandler(lineWebhookSrv, conf.Line.ChannelSecret)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/v1/api")
	{
		api.Get("/genres", hdl.GetGenres)
		api.Get("/games", hdl.GetGames)
		api.Get("/games/:id", hdl.GetGame)
		api.Post("/games", hdl.CreateGame)
	}

	// LINE webhook endpoint
	webhook := app.Group("/webhook")
	{
		webhook.Post("/line", lineWebhookHdl.HandleWebhook)
	}

	logrus.Println("Listening on port: ", conf.App.Port)
	err = app.Listen(":" + conf.App.Port)

	// Listen returns once Shutdown has stopped the server; queued conversations still
	// owe their replies
	drain(lineWebhookSrv, closeCache, func() { gorm.Disconnect(dbConGorm.Catalog) })
	return err
}
