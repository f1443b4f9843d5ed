package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/incidentbilling/internal/config"
	invoicedomain "github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	"github.com/smallbiznis/incidentbilling/internal/observability"
	obsmiddleware "github.com/smallbiznis/incidentbilling/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/incidentbilling/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log, obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	invoiceSvc invoicedomain.Service
}

type Params struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	InvoiceSvc invoicedomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		invoiceSvc: p.InvoiceSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/invoice", s.IdentityRequired(), s.GetMonthlyInvoice)
	api.POST("/reset/invoice", s.ResetInvoices)
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
