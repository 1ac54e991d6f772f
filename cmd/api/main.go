package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "medipay/docs"
	"medipay/internal/adapter/http/handlers"
	"medipay/internal/adapter/http/routes"
	"medipay/internal/adapter/worker"
	"medipay/internal/bootstrap"
	"medipay/internal/config"
	"medipay/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Medipay Billing API
// @version         1.0
// @description     Hospital appointment booking with gateway payments and platform commission split.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.OTelEnabled, cfg.OTelEndpoint, cfg.OTelServiceName, cfg.Environment)
	if err != nil {
		log.Fatalf("[main] tracer: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(sctx); err != nil {
			log.Printf("[main] tracer shutdown error=%v", err)
		}
	}()

	c, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("[main] bootstrap: %v", err)
	}
	defer c.Close()

	go worker.NewPendingReaper(c.Payments, cfg.ReaperInterval, cfg.PendingOrderTTL).Run(ctx)

	h := routes.Handlers{
		Appointments: handlers.NewAppointmentHandler(c.Appointments),
		Payments:     handlers.NewPaymentHandler(c.Payments),
		Commission:   handlers.NewCommissionHandler(c.Commission),
		Admin:        handlers.NewAdminHandler(c.Analytics),
	}
	if err := routes.Run(ctx, cfg, h); err != nil {
		log.Printf("[main] server stopped error=%v", err)
	}
}
