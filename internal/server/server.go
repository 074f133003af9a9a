package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tillworks/backdesk/internal/config"
	"github.com/tillworks/backdesk/internal/customer"
	customerdomain "github.com/tillworks/backdesk/internal/customer/domain"
	"github.com/tillworks/backdesk/internal/observability"
	obslogger "github.com/tillworks/backdesk/internal/observability/logger"
	obsmetrics "github.com/tillworks/backdesk/internal/observability/metrics"
	"github.com/tillworks/backdesk/internal/providers/pdf"
	"github.com/tillworks/backdesk/internal/returns"
	returnsdomain "github.com/tillworks/backdesk/internal/returns/domain"
	"github.com/tillworks/backdesk/internal/sale"
	saledomain "github.com/tillworks/backdesk/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	observability.Module,
	sale.Module,
	returns.Module,
	customer.Module,
	pdf.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
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

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	saleSvc     saledomain.Service
	returnsSvc  returnsdomain.Service
	customerSvc customerdomain.Service
	receipts    pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	SaleSvc     saledomain.Service
	ReturnsSvc  returnsdomain.Service
	CustomerSvc customerdomain.Service
	Receipts    pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		saleSvc:     p.SaleSvc,
		returnsSvc:  p.ReturnsSvc,
		customerSvc: p.CustomerSvc,
		receipts:    p.Receipts,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/sales", s.SearchSales)
	api.GET("/sales/:id/returnable", s.LookupReturnable)

	api.POST("/returns", s.SubmitReturn)
	api.GET("/returns/:id", s.GetReturn)
	api.GET("/returns/:id/receipt.pdf", s.ReturnReceiptPDF)

	api.GET("/customers", s.SearchCustomers)
	api.GET("/customers/:id", s.GetCustomer)
}
