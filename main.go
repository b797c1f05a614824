package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	apiv1 "github.com/gkithmal/dimo-legal-helpdesk-sub000/controllers/v1"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/db"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/fiberlog"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/initializers"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/middleware"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: int(config.Conf.App.MaxUploadBytes) + 1024*1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: config.Conf.App.SwaggerFile,
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT",
	}))
	apiV1.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingDB(c.UserContext()); err != nil {
			log.WithError(err).Error("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("database unavailable"))
		}
		return c.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	})

	//legal hub
	legal := fiber.New()
	apiV1.Mount("/legal", legal)
	legal.Use(middleware.AuthorizationRequired())
	legal.Use(middleware.RbacMiddleware())
	legal.Use(middleware.WithBodyLimit(config.Conf.App.MaxUploadBytes))
	apiv1.InitProfileApiRouters(legal)
	apiv1.InitSubmissionApiRouters(legal)
	apiv1.InitDirectoryApiRouters(legal)
	apiv1.InitFormConfigApiRouters(legal)
	apiv1.InitAdminApiRouters(legal)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("error shutting down")
		}
		time.Sleep(time.Second)
		log.Info("graceful shutdown finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server stopped")
}
