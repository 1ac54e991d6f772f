package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"medipay/internal/adapter/http/handlers"
	"medipay/internal/adapter/http/middleware"
	"medipay/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Appointments *handlers.AppointmentHandler
	Payments     *handlers.PaymentHandler
	Commission   *handlers.CommissionHandler
	Admin        *handlers.AdminHandler
}

// NewRouter builds the gin engine. /v1/ping and the swagger UI are public;
// everything else requires a bearer token.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("")
	secured.Use(middleware.JWTAuth(cfg.JWTSecret))
	addAppointmentRoutes(secured, h.Appointments)
	addPaymentRoutes(secured, h.Payments, h.Commission)
	addAdminRoutes(secured, h.Admin)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, h Handlers) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("[http] shutting down")
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
